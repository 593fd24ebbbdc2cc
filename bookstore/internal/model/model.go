package model

import (
	"time"

	"github.com/kimnamhyeong01/bookstore-service/pkg/auth"
	"github.com/shopspring/decimal"
)

type Book struct {
	ISBN     string          `json:"isbn" db:"isbn"`
	Title    string          `json:"title" db:"title"`
	Year     int             `json:"year" db:"year"`
	Price    decimal.Decimal `json:"price" db:"price"`
	Category string          `json:"category" db:"category"`
}

type BookDetails struct {
	Book
	Authors []Author `json:"authors"`
	Awards  []Award  `json:"awards"`
	Stock   int      `json:"stock"`
}

type BookStock struct {
	Book
	Stock int `json:"stock" db:"stock"`
}

// StockItem is the short search row used when picking a book to reserve.
type StockItem struct {
	ISBN  string `json:"isbn" db:"isbn"`
	Title string `json:"title" db:"title"`
	Stock int    `json:"stock" db:"stock"`
}

type Author struct {
	AuthorID int    `json:"authorId" db:"authorid"`
	Name     string `json:"name" db:"name"`
	Address  string `json:"address" db:"address"`
	URL      string `json:"url" db:"url"`
}

type Award struct {
	AwardID int    `json:"awardId" db:"awardid"`
	Name    string `json:"name" db:"name"`
	Year    int    `json:"year" db:"year"`
}

type Warehouse struct {
	WarehouseID int    `json:"warehouseId" db:"warehouseid"`
	Code        string `json:"code" db:"code"`
	Address     string `json:"address" db:"address"`
	Phone       string `json:"phone" db:"phone"`
}

type InventoryEntry struct {
	WarehouseID int    `json:"warehouseId" db:"warehouse_warehouseid"`
	ISBN        string `json:"isbn" db:"book_isbn"`
	Quantity    int    `json:"quantity" db:"quantity"`
}

type User struct {
	Email string    `json:"email" db:"email"`
	Phone string    `json:"phone" db:"phone"`
	Name  string    `json:"name" db:"name"`
	Role  auth.Role `json:"role" db:"role"`
}

func (u User) Identity() auth.Identity {
	return auth.Identity{Email: u.Email, Name: u.Name, Role: u.Role}
}

type Basket struct {
	BasketID  int             `json:"basketId" db:"basketid"`
	OrderDate *Date           `json:"orderDate" db:"orderdate"`
	UserEmail string          `json:"userEmail" db:"user_email"`
	Lines     []BasketLine    `json:"lines" db:"-"`
	Total     decimal.Decimal `json:"total" db:"-"`
}

func (b Basket) Open() bool {
	return b.OrderDate == nil
}

type BasketLine struct {
	BasketID int             `json:"-" db:"shoppingbasket_basketid"`
	ISBN     string          `json:"isbn" db:"book_isbn"`
	Title    string          `json:"title" db:"title"`
	Price    decimal.Decimal `json:"price" db:"price"`
	Number   int             `json:"number" db:"number"`
}

func (l BasketLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Number)))
}

// Contains is a raw basket line as administrators see it.
type Contains struct {
	BasketID int    `json:"basketId" db:"shoppingbasket_basketid"`
	ISBN     string `json:"isbn" db:"book_isbn"`
	Number   int    `json:"number" db:"number"`
}

type Reservation struct {
	ReservationID   int    `json:"reservationId" db:"reservationid"`
	UserEmail       string `json:"userEmail" db:"user_email"`
	ISBN            string `json:"isbn" db:"book_isbn"`
	Title           string `json:"title,omitempty" db:"title"`
	ReservationDate Date   `json:"reservationDate" db:"reservationdate"`
	PickupTime      Clock  `json:"pickupTime" db:"pickuptime"`
}

func (r Reservation) Slot() time.Time {
	return r.ReservationDate.At(r.PickupTime)
}

type PurchasedLine struct {
	ISBN        string          `json:"isbn"`
	Title       string          `json:"title"`
	Number      int             `json:"number"`
	WarehouseID int             `json:"warehouseId"`
	Remaining   int             `json:"remaining"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type PurchaseResult struct {
	BasketID  int             `json:"basketId"`
	Lines     []PurchasedLine `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	Finalized bool            `json:"finalized"`
}

type EventType string

const (
	EventBasketLineAdded     EventType = "basket.line_added"
	EventBasketLineRemoved   EventType = "basket.line_removed"
	EventPurchaseCompleted   EventType = "purchase.completed"
	EventBasketFinalized     EventType = "basket.finalized"
	EventReservationCreated  EventType = "reservation.created"
	EventReservationUpdated  EventType = "reservation.updated"
	EventReservationCanceled EventType = "reservation.canceled"
)

type Event struct {
	ID      string      `json:"id"`
	Type    EventType   `json:"type"`
	Email   string      `json:"email"`
	At      time.Time   `json:"at"`
	Payload interface{} `json:"payload,omitempty"`
}
