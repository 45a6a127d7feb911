package storage

import (
	"slices"

	"github.com/azaliaz/folioverse/internal/domain/models"
	"github.com/azaliaz/folioverse/internal/logger"
	storerrros "github.com/azaliaz/folioverse/internal/storage/errors"
)

// Observer receives the string form of every order placed on the ledger.
type Observer interface {
	Update(message string)
}

// Ledger is the append-only order record. Placing an order synchronously
// notifies every subscribed observer.
type Ledger struct {
	orders    []models.Order
	observers []Observer
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Subscribe(o Observer) {
	l.observers = append(l.observers, o)
}

// Unsubscribe removes one subscription of o. Observer values must be
// comparable; subscribers here are always pointers.
func (l *Ledger) Unsubscribe(o Observer) {
	for i, sub := range l.observers {
		if sub == o {
			l.observers = append(l.observers[:i], l.observers[i+1:]...)
			return
		}
	}
}

func (l *Ledger) PlaceOrder(order models.Order) {
	log := logger.Get()
	l.orders = append(l.orders, order)
	log.Info().
		Str("id", order.ID).
		Str("username", order.Username).
		Str("title", order.Title).
		Int("quantity", order.Quantity).
		Str("status", order.Status).
		Msg("order placed")
	for _, o := range l.observers {
		o.Update(order.String())
	}
}

func (l *Ledger) Orders() ([]models.Order, error) {
	if len(l.orders) < 1 {
		return nil, storerrros.ErrNoOrders
	}
	return slices.Clone(l.orders), nil
}
