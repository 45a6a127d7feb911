package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
	"github.com/mattn/go-isatty"
	"github.com/shopspring/decimal"
	"golang.org/x/term"

	"github.com/azaliaz/folioverse/internal/config"
	"github.com/azaliaz/folioverse/internal/domain/models"
	"github.com/azaliaz/folioverse/internal/logger"
	"github.com/azaliaz/folioverse/internal/payment"
	"github.com/azaliaz/folioverse/internal/storage"
)

const divider = "------------------------------------------------"

type Catalog interface {
	SaveBook(book models.Book) error
	GetBooks() ([]models.Book, error)
	GetBook(title string) (models.Book, error)
}

type Accounts interface {
	SaveAccount(username, pass string, role models.Role) (models.Account, error)
	ValidAccount(username, pass string, role models.Role) (models.Account, error)
}

type Carts interface {
	AddToCart(username, title string, qty int) error
	CartItems(username string) []models.CartItem
	Checkout(username string) (int, error)
	Pay(username string, strategy payment.Strategy) (string, error)
	Notifications(username string) []string
}

type Ledger interface {
	PlaceOrder(order models.Order)
	Orders() ([]models.Order, error)
	Subscribe(o storage.Observer)
	Unsubscribe(o storage.Observer)
}

// CLI drives the menu tree. The authenticated account is passed down to the
// dashboard methods; nothing session-shaped is stored on the struct.
type CLI struct {
	cfg      config.Config
	catalog  Catalog
	accounts Accounts
	carts    Carts
	ledger   Ledger
	valid    *validator.Validate
	stdin    io.Reader
	scanner  *bufio.Scanner
	out      io.Writer
}

func New(cfg config.Config, catalog Catalog, accounts Accounts, carts Carts, ledger Ledger, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		cfg:      cfg,
		catalog:  catalog,
		accounts: accounts,
		carts:    carts,
		ledger:   ledger,
		valid:    validator.New(),
		stdin:    in,
		scanner:  bufio.NewScanner(in),
		out:      out,
	}
}

// accountObserver prints order notifications for one registered account.
type accountObserver struct {
	username string
	out      io.Writer
}

func (o *accountObserver) Update(message string) {
	fmt.Fprintln(o.out, "[Notification] "+message)
}

type credentialsForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type bookForm struct {
	Title    string  `validate:"required"`
	Author   string  `validate:"required"`
	Price    float64 `validate:"gte=0"`
	Quantity int     `validate:"gte=0"`
}

func (c *CLI) Run(ctx context.Context) error {
	log := logger.Get()
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "================================================")
	fmt.Fprintf(c.out, "              Welcome to %s\n", c.cfg.StoreName)
	fmt.Fprintln(c.out, "        Your Online Bookstore Management")
	fmt.Fprintln(c.out, "================================================")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "Please select your role to continue:")
		fmt.Fprintln(c.out, divider)
		fmt.Fprintln(c.out, "1. Admin")
		fmt.Fprintln(c.out, "2. User")
		fmt.Fprintln(c.out, "3. Exit")

		choice, ok := c.readInt("Enter your choice (1-3): ")
		if !ok {
			return nil
		}
		switch choice {
		case 1:
			c.adminAuthMenu()
		case 2:
			c.userAuthMenu()
		case 3:
			fmt.Fprintf(c.out, "\nThank you for using %s. Goodbye!\n", c.cfg.StoreName)
			log.Info().Msg("graceful exit")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid option. Please try again.")
		}
	}
}

// readLine prints the prompt and returns the trimmed next input line.
// ok is false once input is exhausted.
func (c *CLI) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}

// readInt re-prompts until the line parses as an integer.
func (c *CLI) readInt(prompt string) (int, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a number.")
			continue
		}
		return n, true
	}
}

// readPrice re-prompts until the line parses as a decimal amount.
func (c *CLI) readPrice(prompt string) (decimal.Decimal, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return decimal.Zero, false
		}
		price, err := decimal.NewFromString(line)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a valid price.")
			continue
		}
		return price, true
	}
}

// readPassword masks input when reading from a real terminal and falls back
// to a plain line otherwise (piped input, tests).
func (c *CLI) readPassword(prompt string) (string, bool) {
	if c.stdin == os.Stdin && isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprint(c.out, prompt)
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(c.out)
		if err != nil {
			log := logger.Get()
			log.Error().Err(err).Msg("read password failed")
			return "", false
		}
		return strings.TrimSpace(string(raw)), true
	}
	return c.readLine(prompt)
}
