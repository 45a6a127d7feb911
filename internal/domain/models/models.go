package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownCategory = errors.New("unknown book category")
	ErrUnknownFormat   = errors.New("unknown book format")
)

// Category is fixed at creation and only changes how a book is displayed.
type Category int

const (
	Fiction Category = iota
	NonFiction
	Science
)

func (c Category) Label() string {
	switch c {
	case NonFiction:
		return "Non-Fiction"
	case Science:
		return "Science"
	default:
		return "Fiction"
	}
}

func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fiction":
		return Fiction, nil
	case "nonfiction":
		return NonFiction, nil
	case "science":
		return Science, nil
	default:
		return 0, ErrUnknownCategory
	}
}

// Format carries no behavioral difference between ebook and physical books;
// it is validated on input and kept for display only.
type Format int

const (
	EBook Format = iota
	Physical
)

func (f Format) String() string {
	if f == Physical {
		return "physical"
	}
	return "ebook"
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ebook":
		return EBook, nil
	case "physical":
		return Physical, nil
	default:
		return 0, ErrUnknownFormat
	}
}

type Book struct {
	Title    string
	Author   string
	Price    decimal.Decimal
	Quantity int
	Category Category
	Format   Format
}

// NewBook is the single constructor for every category and format.
func NewBook(format Format, category Category, title, author string, price decimal.Decimal, quantity int) Book {
	return Book{
		Title:    title,
		Author:   author,
		Price:    price,
		Quantity: quantity,
		Category: category,
		Format:   format,
	}
}

func (b Book) Display() string {
	return fmt.Sprintf("[%s] %s by %s - $%s | Qty: %d",
		b.Category.Label(), b.Title, b.Author, b.Price.StringFixed(2), b.Quantity)
}

type Role int

const (
	RoleUser Role = iota
	RoleAdmin
)

func (r Role) String() string {
	if r == RoleAdmin {
		return "admin"
	}
	return "user"
}

type Account struct {
	Username string
	PassHash string
	Role     Role
}

const (
	OrderPlaced  = "PLACED"
	OrderPending = "Pending"
)

// Order is immutable once created.
type Order struct {
	ID       string
	Username string
	Date     time.Time
	Price    decimal.Decimal
	Quantity int
	Status   string
	Title    string
}

func NewOrder(username, title string, price decimal.Decimal, quantity int, status string) Order {
	return Order{
		ID:       uuid.New().String(),
		Username: username,
		Date:     time.Now(),
		Price:    price,
		Quantity: quantity,
		Status:   status,
		Title:    title,
	}
}

func (o Order) String() string {
	return fmt.Sprintf("Order by %s for %s x%d [%s]", o.Username, o.Title, o.Quantity, o.Status)
}

// CartItem is one cart line; Title is the title as the user entered it.
type CartItem struct {
	Title    string
	Quantity int
}
