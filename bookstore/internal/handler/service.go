package handler

import (
	"context"
	"time"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/service"
	"github.com/kimnamhyeong01/bookstore-service/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookstoreService interface {
	Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error)
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)

	GetBook(ctx context.Context, isbn string) (model.BookDetails, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	CreateBook(ctx context.Context, req model.BookRequest) (model.BookDetails, error)
	UpdateBook(ctx context.Context, isbn string, req model.BookRequest) (model.BookDetails, error)
	DeleteBook(ctx context.Context, isbn string) error
	SearchBooks(ctx context.Context, req model.SearchRequest) ([]model.BookStock, error)
	SearchStock(ctx context.Context, keyword string) ([]model.StockItem, error)
	CreateAuthor(ctx context.Context, req model.AuthorRequest) (model.Author, error)
	UpdateAuthor(ctx context.Context, id int, req model.AuthorRequest) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int) error
	ListAuthors(ctx context.Context) ([]model.Author, error)
	CreateAward(ctx context.Context, req model.AwardRequest) (model.Award, error)
	UpdateAward(ctx context.Context, id int, req model.AwardRequest) (model.Award, error)
	DeleteAward(ctx context.Context, id int) error
	ListAwards(ctx context.Context) ([]model.Award, error)

	SetInventory(ctx context.Context, req model.InventoryRequest) (model.InventoryEntry, error)
	DeleteInventory(ctx context.Context, warehouseID int, isbn string) error
	ListInventory(ctx context.Context, isbn string) ([]model.InventoryEntry, error)
	CreateWarehouse(ctx context.Context, req model.WarehouseRequest) (model.Warehouse, error)
	DeleteWarehouse(ctx context.Context, id int) error
	ListWarehouses(ctx context.Context) ([]model.Warehouse, error)

	AddToBasket(ctx context.Context, id auth.Identity, req model.AddToBasketRequest) (model.Basket, error)
	RemoveFromBasket(ctx context.Context, id auth.Identity, isbn string) (model.Basket, error)
	Basket(ctx context.Context, id auth.Identity) (model.Basket, error)
	FinalizeBasket(ctx context.Context, id auth.Identity) (model.Basket, error)
	PurchaseHistory(ctx context.Context, id auth.Identity) ([]model.Basket, error)
	Purchase(ctx context.Context, id auth.Identity, req model.PurchaseRequest) (model.PurchaseResult, error)
	AddContains(ctx context.Context, req model.ContainsRequest) error
	EditContains(ctx context.Context, req model.ContainsRequest) error
	DeleteContains(ctx context.Context, basketID int, isbn string) error
	ListContains(ctx context.Context) ([]model.Contains, error)

	CreateReservation(ctx context.Context, id auth.Identity, req model.CreateReservationRequest) (model.Reservation, error)
	UpdatePickupTime(ctx context.Context, id auth.Identity, reservationID int, req model.UpdatePickupTimeRequest) (model.Reservation, error)
	CancelReservation(ctx context.Context, id auth.Identity, reservationID int) error
	ListReservations(ctx context.Context, id auth.Identity) ([]model.Reservation, error)
	CheckConflict(ctx context.Context, candidate time.Time, excludeID int) (bool, error)
}

var _ BookstoreService = (*service.Service)(nil)
