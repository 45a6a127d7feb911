package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azaliaz/folioverse/internal/domain/models"
	"github.com/azaliaz/folioverse/internal/payment"
	"github.com/azaliaz/folioverse/internal/storage"
	storerrros "github.com/azaliaz/folioverse/internal/storage/errors"
)

func newCarts(t *testing.T, books ...models.Book) (*storage.Carts, *storage.Ledger) {
	t.Helper()
	catalog := storage.NewCatalog()
	for _, book := range books {
		require.NoError(t, catalog.SaveBook(book))
	}
	ledger := storage.NewLedger()
	return storage.NewCarts(catalog, ledger), ledger
}

func TestCarts_AddToCartAccumulates(t *testing.T) {
	carts, _ := newCarts(t, fiction("Dune", "Herbert", "9.99", 5))

	require.NoError(t, carts.AddToCart("bob", "Dune", 2))
	require.NoError(t, carts.AddToCart("bob", "Dune", 3))
	// non-positive quantities are deliberately accepted
	require.NoError(t, carts.AddToCart("bob", "Dune", -1))

	items := carts.CartItems("bob")
	require.Len(t, items, 1)
	assert.Equal(t, "Dune", items[0].Title)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestCarts_AddToCartUnknownBook(t *testing.T) {
	carts, _ := newCarts(t)

	err := carts.AddToCart("bob", "Hyperion", 1)
	assert.ErrorIs(t, err, storerrros.ErrBookNotFound)
	assert.Empty(t, carts.CartItems("bob"))
	assert.Empty(t, carts.Notifications("bob"))
}

func TestCarts_CartItemsInsertionOrder(t *testing.T) {
	carts, _ := newCarts(t,
		fiction("Dune", "Herbert", "9.99", 5),
		fiction("Hyperion", "Simmons", "7.50", 3),
	)

	require.NoError(t, carts.AddToCart("bob", "Hyperion", 1))
	require.NoError(t, carts.AddToCart("bob", "Dune", 2))

	items := carts.CartItems("bob")
	require.Len(t, items, 2)
	assert.Equal(t, "Hyperion", items[0].Title)
	assert.Equal(t, "Dune", items[1].Title)
}

func TestCarts_Checkout(t *testing.T) {
	carts, ledger := newCarts(t, fiction("Dune", "Herbert", "9.99", 5))

	t.Run("empty cart is a no-op", func(t *testing.T) {
		_, err := carts.Checkout("bob")
		assert.ErrorIs(t, err, storerrros.ErrCartEmpty)
		assert.Empty(t, carts.Notifications("bob"))
	})

	t.Run("clears cart without creating orders", func(t *testing.T) {
		require.NoError(t, carts.AddToCart("bob", "Dune", 2))

		n, err := carts.Checkout("bob")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Empty(t, carts.CartItems("bob"))
		assert.Contains(t, carts.Notifications("bob"), "Checked out cart with 1 items.")

		_, err = ledger.Orders()
		assert.ErrorIs(t, err, storerrros.ErrNoOrders)
	})
}

func TestCarts_Pay(t *testing.T) {
	carts, ledger := newCarts(t,
		fiction("Dune", "Herbert", "9.99", 5),
		fiction("Hyperion", "Simmons", "7.50", 3),
	)

	require.NoError(t, carts.AddToCart("bob", "Dune", 2))
	require.NoError(t, carts.AddToCart("bob", "Hyperion", 1))

	confirmation, err := carts.Pay("bob", payment.CreditCard{})
	require.NoError(t, err)
	assert.Equal(t, "bob paid $27.48 via Credit Card.", confirmation)

	orders, err := ledger.Orders()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, order := range orders {
		assert.Equal(t, "bob", order.Username)
		assert.Equal(t, models.OrderPlaced, order.Status)
		assert.NotEmpty(t, order.ID)
	}
	assert.Equal(t, "Dune", orders[0].Title)
	assert.Equal(t, 2, orders[0].Quantity)
	assert.Equal(t, "19.98", orders[0].Price.StringFixed(2))
	assert.Equal(t, "Hyperion", orders[1].Title)
	assert.Equal(t, 1, orders[1].Quantity)
	assert.Equal(t, "7.50", orders[1].Price.StringFixed(2))

	assert.Empty(t, carts.CartItems("bob"))
	assert.Contains(t, carts.Notifications("bob"), "Paid $27.48 successfully.")
}

func TestCarts_PayEmptyCart(t *testing.T) {
	carts, ledger := newCarts(t, fiction("Dune", "Herbert", "9.99", 5))

	_, err := carts.Pay("bob", payment.PayPal{})
	assert.ErrorIs(t, err, storerrros.ErrCartEmpty)
	assert.Empty(t, carts.Notifications("bob"))

	_, err = ledger.Orders()
	assert.ErrorIs(t, err, storerrros.ErrNoOrders)
}

func TestCarts_NotificationsAppendOrder(t *testing.T) {
	carts, _ := newCarts(t, fiction("Dune", "Herbert", "9.99", 5))

	require.NoError(t, carts.AddToCart("bob", "Dune", 2))
	_, err := carts.Checkout("bob")
	require.NoError(t, err)

	notes := carts.Notifications("bob")
	require.Len(t, notes, 2)
	assert.Equal(t, `Added 2 of "Dune" to cart.`, notes[0])
	assert.Equal(t, "Checked out cart with 1 items.", notes[1])

	assert.Empty(t, carts.Notifications("alice"))
}
