package storage

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/azaliaz/folioverse/internal/domain/models"
	"github.com/azaliaz/folioverse/internal/logger"
	"github.com/azaliaz/folioverse/internal/payment"
	storerrros "github.com/azaliaz/folioverse/internal/storage/errors"
)

// Carts holds every user's cart and notification log. Each method takes the
// username explicitly; there is no shared "current user" field, so callers
// for different users can interleave safely.
type Carts struct {
	catalog *Catalog
	ledger  *Ledger
	carts   map[string][]models.CartItem
	notes   map[string][]string
}

func NewCarts(catalog *Catalog, ledger *Ledger) *Carts {
	return &Carts{
		catalog: catalog,
		ledger:  ledger,
		carts:   make(map[string][]models.CartItem),
		notes:   make(map[string][]string),
	}
}

// AddToCart increments the cart line for title by qty. The book must exist
// in the catalog; the quantity is accepted as-is, including zero and
// negative values.
func (cs *Carts) AddToCart(username, title string, qty int) error {
	log := logger.Get()
	if _, err := cs.catalog.GetBook(title); err != nil {
		return err
	}
	cart := cs.carts[username]
	found := false
	for i, item := range cart {
		if item.Title == title {
			cart[i].Quantity += qty
			found = true
			break
		}
	}
	if !found {
		cart = append(cart, models.CartItem{Title: title, Quantity: qty})
	}
	cs.carts[username] = cart
	cs.notes[username] = append(cs.notes[username], fmt.Sprintf("Added %d of %q to cart.", qty, title))
	log.Debug().Str("username", username).Str("title", title).Int("qty", qty).Msg("added to cart")
	return nil
}

// CartItems returns the cart lines in insertion order.
func (cs *Carts) CartItems(username string) []models.CartItem {
	return slices.Clone(cs.carts[username])
}

// Checkout clears the cart and records a notification with the item count.
// No order is created. Returns the number of cleared lines.
func (cs *Carts) Checkout(username string) (int, error) {
	log := logger.Get()
	cart := cs.carts[username]
	if len(cart) == 0 {
		return 0, storerrros.ErrCartEmpty
	}
	n := len(cart)
	cs.notes[username] = append(cs.notes[username], fmt.Sprintf("Checked out cart with %d items.", n))
	delete(cs.carts, username)
	log.Info().Str("username", username).Int("items", n).Msg("cart checked out")
	return n, nil
}

// Pay totals the cart against the catalog's current prices, runs the
// strategy, places one PLACED order per cart line and clears the cart.
// It returns the strategy's confirmation line.
func (cs *Carts) Pay(username string, strategy payment.Strategy) (string, error) {
	log := logger.Get()
	cart := cs.carts[username]
	if len(cart) == 0 {
		return "", storerrros.ErrCartEmpty
	}

	total := decimal.Zero
	var orders []models.Order
	for _, item := range cart {
		book, err := cs.catalog.GetBook(item.Title)
		if err != nil {
			continue
		}
		subtotal := book.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)
		orders = append(orders, models.NewOrder(username, item.Title, subtotal, item.Quantity, models.OrderPlaced))
	}

	confirmation := strategy.Pay(username, total)
	cs.notes[username] = append(cs.notes[username], fmt.Sprintf("Paid $%s successfully.", total.StringFixed(2)))
	for _, o := range orders {
		cs.ledger.PlaceOrder(o)
	}
	delete(cs.carts, username)
	log.Info().Str("username", username).Str("total", total.StringFixed(2)).Int("orders", len(orders)).Msg("payment done")
	return confirmation, nil
}

// Notifications returns the user's notification log in append order.
func (cs *Carts) Notifications(username string) []string {
	return slices.Clone(cs.notes[username])
}
