package tests

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azaliaz/folioverse/internal/cli"
	"github.com/azaliaz/folioverse/internal/cli/mocks"
	"github.com/azaliaz/folioverse/internal/config"
	"github.com/azaliaz/folioverse/internal/domain/models"
	"github.com/azaliaz/folioverse/internal/storage"
	storerrros "github.com/azaliaz/folioverse/internal/storage/errors"
)

var cfg = config.Config{StoreName: "FolioVerse"}

// runScript drives a CLI wired to real in-memory stores with a scripted
// stdin and returns everything written to stdout.
func runScript(t *testing.T, lines ...string) string {
	t.Helper()
	catalog := storage.NewCatalog()
	accounts := storage.NewAccounts()
	ledger := storage.NewLedger()
	carts := storage.NewCarts(catalog, ledger)

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	c := cli.New(cfg, catalog, accounts, carts, ledger, in, &out)
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestFullPurchaseScenario(t *testing.T) {
	out := runScript(t,
		// admin: register, login, add Dune, list, logout, back
		"1", "1", "alice", "pw1",
		"2", "alice", "pw1",
		"1", "ebook", "fiction", "Dune", "Herbert", "9.99", "5",
		"2", "4", "3",
		// user: register, login, add 2 Dune to cart, view cart, pay by card,
		// notifications, logout, back, exit
		"2", "1", "bob", "pw2",
		"2", "bob", "pw2",
		"2", "Dune", "2",
		"3", "7", "1",
		"5", "8", "3", "3",
	)

	assert.Contains(t, out, "Welcome to FolioVerse")
	assert.Contains(t, out, "Admin registered successfully. Please log in.")
	assert.Contains(t, out, "Login successful. Welcome, Admin.")
	assert.Contains(t, out, "Book added successfully.")
	assert.Contains(t, out, "[Fiction] Dune by Herbert - $9.99 | Qty: 5")
	assert.Contains(t, out, "User alice logged out.")

	assert.Contains(t, out, "Registered successfully. Please log in.")
	assert.Contains(t, out, "Book found: Dune by Herbert | Price: $9.99")
	assert.Contains(t, out, "Available quantity: 5")
	assert.Contains(t, out, `2 copy/copies of "Dune" added to cart.`)
	assert.Contains(t, out, "[Cart of bob]")
	assert.Contains(t, out, "- Dune: 2")
	assert.Contains(t, out, "bob paid $19.98 via Credit Card.")

	// both registered accounts observe the order
	assert.Equal(t, 2, strings.Count(out, "[Notification] Order by bob for Dune x2 [PLACED]"))

	assert.Contains(t, out, `Added 2 of "Dune" to cart.`)
	assert.Contains(t, out, "Paid $19.98 successfully.")
	assert.Contains(t, out, "Thank you for using FolioVerse. Goodbye!")
}

func TestEmptyCartOperationsAreNoOps(t *testing.T) {
	out := runScript(t,
		"2", "1", "bob", "pw2",
		"2", "bob", "pw2",
		"4", // checkout
		"7", "1", // pay by card
		"5", // notifications
		"8", "3", "3",
	)

	assert.Equal(t, 2, strings.Count(out, "Cart is empty."))
	assert.NotContains(t, out, "Items checked out successfully.")
	assert.NotContains(t, out, "paid $")
	assert.Contains(t, out, "No notifications.")
}

func TestDirectOrderPlacement(t *testing.T) {
	out := runScript(t,
		"1", "1", "alice", "pw1",
		"2", "alice", "pw1",
		"1", "physical", "science", "Cosmos", "Sagan", "12.00", "3",
		"4", "3",
		"2", "1", "bob", "pw2",
		"2", "bob", "pw2",
		"6", "cosmos", "2", "physical",
		"8", "3",
		// admin checks the ledger
		"1", "2", "alice", "pw1", "3", "4", "3", "3",
	)

	assert.Contains(t, out, "Order placed successfully.")
	assert.Contains(t, out, "[Notification] Order by bob for Cosmos x2 [Pending]")
	assert.Contains(t, out, "\nOrder by bob for Cosmos x2 [Pending]\n")
}

func TestInvalidMenuAndNumericInput(t *testing.T) {
	out := runScript(t, "9", "abc", "3")

	assert.Contains(t, out, "Invalid option. Please try again.")
	assert.Contains(t, out, "Please enter a number.")
	assert.Contains(t, out, "Goodbye!")
}

func TestAddBookRejectsBadFormatAndCategory(t *testing.T) {
	out := runScript(t,
		"1", "1", "alice", "pw1",
		"2", "alice", "pw1",
		"1", "paperback",
		"1", "ebook", "poetry",
		"4", "3", "3",
	)

	assert.Contains(t, out, "Invalid format. Please try again.")
	assert.Contains(t, out, "Invalid category. Please try again.")
	assert.NotContains(t, out, "Book added successfully.")
}

func TestAddToCartUnknownBookSkipsQuantityPrompt(t *testing.T) {
	out := runScript(t,
		"2", "1", "bob", "pw2",
		"2", "bob", "pw2",
		"2", "Ghost",
		"8", "3", "3", // the 8 must land on the dashboard, not the quantity prompt
	)

	assert.Contains(t, out, "Book not found. Cannot add to cart.")
	assert.Contains(t, out, "User bob logged out.")
}

func TestIncorrectCredentials(t *testing.T) {
	out := runScript(t,
		"2", "1", "bob", "pw2",
		"2", "bob", "wrong",
		"3", "3",
	)

	assert.Contains(t, out, "Incorrect credentials. Try again.")
	assert.NotContains(t, out, "User Dashboard")
}

func TestAddBookRepromptsOnBadPrice(t *testing.T) {
	out := runScript(t,
		"1", "1", "alice", "pw1",
		"2", "alice", "pw1",
		"1", "ebook", "fiction", "Dune", "Herbert", "abc", "9.99", "5",
		"2", "4", "3", "3",
	)

	assert.Contains(t, out, "Please enter a valid price.")
	assert.Contains(t, out, "Book added successfully.")
	assert.Contains(t, out, "[Fiction] Dune by Herbert - $9.99 | Qty: 5")
}

func TestMakePaymentStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockCatalog(ctrl)
	mockAccounts := mocks.NewMockAccounts(ctrl)
	mockCarts := mocks.NewMockCarts(ctrl)
	mockLedger := mocks.NewMockLedger(ctrl)

	mockAccounts.EXPECT().
		ValidAccount("bob", "pw2", models.RoleUser).
		Return(models.Account{Username: "bob"}, nil)
	mockCarts.EXPECT().
		Pay("bob", gomock.Any()).
		Return("", errors.New("ledger unavailable"))

	var out bytes.Buffer
	in := strings.NewReader("2\n2\nbob\npw2\n7\n1\n8\n3\n3\n")
	c := cli.New(cfg, mockCatalog, mockAccounts, mockCarts, mockLedger, in, &out)
	require.NoError(t, c.Run(context.Background()))

	assert.NotContains(t, out.String(), "paid $")
	assert.Contains(t, out.String(), "User bob logged out.")
}

func TestAdminDashboardWithMockedStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockCatalog(ctrl)
	mockAccounts := mocks.NewMockAccounts(ctrl)
	mockCarts := mocks.NewMockCarts(ctrl)
	mockLedger := mocks.NewMockLedger(ctrl)

	mockAccounts.EXPECT().
		ValidAccount("alice", "pw1", models.RoleAdmin).
		Return(models.Account{Username: "alice", Role: models.RoleAdmin}, nil)
	mockLedger.EXPECT().Orders().Return(nil, storerrros.ErrNoOrders)
	mockCatalog.EXPECT().GetBooks().Return(nil, storerrros.ErrEmptyBooksList)

	var out bytes.Buffer
	in := strings.NewReader("1\n2\nalice\npw1\n3\n2\n4\n3\n3\n")
	c := cli.New(cfg, mockCatalog, mockAccounts, mockCarts, mockLedger, in, &out)
	require.NoError(t, c.Run(context.Background()))

	assert.Contains(t, out.String(), "No orders yet.")
	assert.Contains(t, out.String(), "No books available.")
	assert.Contains(t, out.String(), "User alice logged out.")
}
