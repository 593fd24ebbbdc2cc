package model

import (
	"github.com/kimnamhyeong01/bookstore-service/pkg/auth"
	"github.com/shopspring/decimal"
)

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
}

type CreateUserRequest struct {
	Email string    `json:"email" validate:"required,email"`
	Phone string    `json:"phone" validate:"required"`
	Name  string    `json:"name"`
	Role  auth.Role `json:"role" validate:"required,oneof=Admin Customer"`
}

type AddToBasketRequest struct {
	ISBN     string `json:"isbn" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type PurchaseRequest struct {
	// Finalize stamps the order date in the same unit of work as the inventory debit.
	Finalize bool `json:"finalize"`
}

type CreateReservationRequest struct {
	ISBN       string `json:"isbn" validate:"required"`
	Date       string `json:"reservationDate" validate:"required,day"`
	PickupTime string `json:"pickupTime" validate:"required,clock"`
}

type UpdatePickupTimeRequest struct {
	PickupTime string `json:"pickupTime" validate:"required,clock"`
}

type SearchKind string

const (
	SearchByTitle  SearchKind = "title"
	SearchByAward  SearchKind = "award"
	SearchByAuthor SearchKind = "author"
)

type SearchRequest struct {
	Kind    SearchKind `query:"by" validate:"omitempty,oneof=title award author"`
	Keyword string     `query:"q"`
}

type BookRequest struct {
	ISBN      string          `json:"isbn" validate:"required,isbn"`
	Title     string          `json:"title" validate:"required,max=255"`
	Year      int             `json:"year" validate:"gte=0,lte=9999"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category" validate:"max=100"`
	AuthorIDs []int           `json:"authorIds" validate:"dive,gt=0"`
	AwardIDs  []int           `json:"awardIds" validate:"dive,gt=0"`
}

func (r BookRequest) Book() Book {
	return Book{ISBN: r.ISBN, Title: r.Title, Year: r.Year, Price: r.Price, Category: r.Category}
}

type AuthorRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Address string `json:"address" validate:"max=255"`
	URL     string `json:"url" validate:"omitempty,url"`
}

type AwardRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	Year int    `json:"year" validate:"gte=0,lte=9999"`
}

type WarehouseRequest struct {
	Code    string `json:"code" validate:"required,max=50"`
	Address string `json:"address" validate:"max=255"`
	Phone   string `json:"phone" validate:"max=50"`
}

type InventoryRequest struct {
	WarehouseID int    `json:"warehouseId" validate:"required,gt=0"`
	ISBN        string `json:"isbn" validate:"required"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
}

type ContainsRequest struct {
	BasketID int    `json:"basketId" validate:"required,gt=0"`
	ISBN     string `json:"isbn" validate:"required"`
	Number   int    `json:"number" validate:"required,gt=0"`
}
