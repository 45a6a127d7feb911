package cli

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/azaliaz/folioverse/internal/domain/models"
	"github.com/azaliaz/folioverse/internal/logger"
	"github.com/azaliaz/folioverse/internal/payment"
	storerrros "github.com/azaliaz/folioverse/internal/storage/errors"
)

func (c *CLI) header(title string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, divider)
	fmt.Fprintf(c.out, "%s\n", title)
	fmt.Fprintln(c.out, divider)
}

func (c *CLI) adminAuthMenu() {
	for {
		c.header("Admin Authentication")
		fmt.Fprintln(c.out, "1. Register as Admin")
		fmt.Fprintln(c.out, "2. Login as Admin")
		fmt.Fprintln(c.out, "3. Back")

		choice, ok := c.readInt("Enter your choice: ")
		if !ok {
			return
		}
		switch choice {
		case 1:
			c.register(models.RoleAdmin)
		case 2:
			if acc, ok := c.login(models.RoleAdmin); ok {
				c.adminMenu(acc)
			}
		case 3:
			fmt.Fprintln(c.out, "Returning to main menu...")
			return
		default:
			fmt.Fprintln(c.out, "Invalid option.")
		}
	}
}

func (c *CLI) userAuthMenu() {
	for {
		c.header("User Authentication")
		fmt.Fprintln(c.out, "1. Register as User")
		fmt.Fprintln(c.out, "2. Login as User")
		fmt.Fprintln(c.out, "3. Back")

		choice, ok := c.readInt("Enter your choice: ")
		if !ok {
			return
		}
		switch choice {
		case 1:
			c.register(models.RoleUser)
		case 2:
			if acc, ok := c.login(models.RoleUser); ok {
				c.userMenu(acc)
			}
		case 3:
			fmt.Fprintln(c.out, "Returning to main menu...")
			return
		default:
			fmt.Fprintln(c.out, "Invalid option.")
		}
	}
}

func (c *CLI) register(role models.Role) {
	log := logger.Get()
	who := "User"
	userPrompt, passPrompt := "Enter username: ", "Enter password: "
	if role == models.RoleAdmin {
		who = "Admin"
		userPrompt, passPrompt = "Enter Admin username: ", "Enter Admin password: "
	}
	fmt.Fprintf(c.out, "\n----- %s Registration -----\n", who)

	username, ok := c.readLine(userPrompt)
	if !ok {
		return
	}
	password, ok := c.readPassword(passPrompt)
	if !ok {
		return
	}
	if err := c.valid.Struct(credentialsForm{Username: username, Password: password}); err != nil {
		fmt.Fprintln(c.out, "Username and password are required.")
		return
	}

	acc, err := c.accounts.SaveAccount(username, password, role)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("registration failed")
		fmt.Fprintln(c.out, "Registration failed. Please try again.")
		return
	}
	// every registered account gets order notifications
	c.ledger.Subscribe(&accountObserver{username: acc.Username, out: c.out})

	if role == models.RoleAdmin {
		fmt.Fprintln(c.out, "Admin registered successfully. Please log in.")
	} else {
		fmt.Fprintln(c.out, "Registered successfully. Please log in.")
	}
}

func (c *CLI) login(role models.Role) (models.Account, bool) {
	who := "User"
	if role == models.RoleAdmin {
		who = "Admin"
	}
	fmt.Fprintf(c.out, "\n----- %s Login -----\n", who)

	username, ok := c.readLine("Username: ")
	if !ok {
		return models.Account{}, false
	}
	password, ok := c.readPassword("Password: ")
	if !ok {
		return models.Account{}, false
	}

	acc, err := c.accounts.ValidAccount(username, password, role)
	if err != nil {
		if role == models.RoleAdmin {
			fmt.Fprintln(c.out, "Incorrect credentials. Please try again.")
		} else {
			fmt.Fprintln(c.out, "Incorrect credentials. Try again.")
		}
		return models.Account{}, false
	}
	if role == models.RoleAdmin {
		fmt.Fprintln(c.out, "Login successful. Welcome, Admin.")
	} else {
		fmt.Fprintln(c.out, "Login successful.")
	}
	return acc, true
}

func (c *CLI) adminMenu(session models.Account) {
	for {
		c.header("Admin Dashboard")
		fmt.Fprintln(c.out, "1. Add Book")
		fmt.Fprintln(c.out, "2. List Books")
		fmt.Fprintln(c.out, "3. View Orders")
		fmt.Fprintln(c.out, "4. Logout")

		choice, ok := c.readInt("Enter your choice: ")
		if !ok {
			return
		}
		switch choice {
		case 1:
			c.addBook()
		case 2:
			fmt.Fprintln(c.out, "\n----- Available Books -----")
			c.listBooks()
		case 3:
			fmt.Fprintln(c.out, "\n----- Orders -----")
			c.viewOrders()
		case 4:
			c.logout(session)
			return
		default:
			fmt.Fprintln(c.out, "Invalid option.")
		}
	}
}

func (c *CLI) addBook() {
	log := logger.Get()
	fmt.Fprintln(c.out, "\n----- Add New Book -----")

	formatStr, ok := c.readLine("Enter format (ebook/physical): ")
	if !ok {
		return
	}
	format, err := models.ParseFormat(formatStr)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid format. Please try again.")
		return
	}

	categoryStr, ok := c.readLine("Enter category (fiction/nonfiction/science): ")
	if !ok {
		return
	}
	category, err := models.ParseCategory(categoryStr)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid category. Please try again.")
		return
	}

	title, ok := c.readLine("Enter title: ")
	if !ok {
		return
	}
	author, ok := c.readLine("Enter author: ")
	if !ok {
		return
	}
	price, ok := c.readPrice("Enter price: ")
	if !ok {
		return
	}
	quantity, ok := c.readInt("Enter quantity: ")
	if !ok {
		return
	}

	form := bookForm{Title: title, Author: author, Price: price.InexactFloat64(), Quantity: quantity}
	if err := c.valid.Struct(form); err != nil {
		fmt.Fprintln(c.out, "Invalid book details. Please try again.")
		return
	}

	book := models.NewBook(format, category, title, author, price, quantity)
	if err := c.catalog.SaveBook(book); err != nil {
		log.Error().Err(err).Str("title", title).Msg("save book failed")
		fmt.Fprintln(c.out, "Could not add book. Please try again.")
		return
	}
	fmt.Fprintln(c.out, "Book added successfully.")
}

func (c *CLI) listBooks() {
	log := logger.Get()
	books, err := c.catalog.GetBooks()
	if err != nil {
		if errors.Is(err, storerrros.ErrEmptyBooksList) {
			fmt.Fprintln(c.out, "No books available.")
			return
		}
		log.Error().Err(err).Msg("list books failed")
		return
	}
	for _, book := range books {
		fmt.Fprintln(c.out, book.Display())
	}
}

func (c *CLI) viewOrders() {
	log := logger.Get()
	orders, err := c.ledger.Orders()
	if err != nil {
		if errors.Is(err, storerrros.ErrNoOrders) {
			fmt.Fprintln(c.out, "No orders yet.")
			return
		}
		log.Error().Err(err).Msg("view orders failed")
		return
	}
	for _, order := range orders {
		fmt.Fprintln(c.out, order.String())
	}
}

func (c *CLI) logout(session models.Account) {
	fmt.Fprintf(c.out, "User %s logged out.\n", session.Username)
	fmt.Fprintln(c.out, "Logged out successfully.")
}

func (c *CLI) userMenu(session models.Account) {
	for {
		c.header("User Dashboard")
		fmt.Fprintln(c.out, "1. View Books")
		fmt.Fprintln(c.out, "2. Add to Cart")
		fmt.Fprintln(c.out, "3. View Cart")
		fmt.Fprintln(c.out, "4. Checkout")
		fmt.Fprintln(c.out, "5. Notifications")
		fmt.Fprintln(c.out, "6. Place Order")
		fmt.Fprintln(c.out, "7. Make Payment")
		fmt.Fprintln(c.out, "8. Logout")

		choice, ok := c.readInt("Enter your choice: ")
		if !ok {
			return
		}
		switch choice {
		case 1:
			fmt.Fprintln(c.out, "\n----- Available Books -----")
			c.listBooks()
		case 2:
			c.addToCart(session)
		case 3:
			c.viewCart(session)
		case 4:
			c.checkout(session)
		case 5:
			c.viewNotifications(session)
		case 6:
			c.placeOrder(session)
		case 7:
			c.makePayment(session)
		case 8:
			c.logout(session)
			return
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
	}
}

func (c *CLI) addToCart(session models.Account) {
	fmt.Fprintln(c.out, "\n----- Add to Cart -----")

	title, ok := c.readLine("Book title: ")
	if !ok {
		return
	}
	book, err := c.catalog.GetBook(title)
	if err != nil {
		fmt.Fprintln(c.out, "Book not found. Cannot add to cart.")
		return
	}
	fmt.Fprintf(c.out, "Book found: %s by %s | Price: $%s\n", book.Title, book.Author, book.Price.StringFixed(2))
	fmt.Fprintf(c.out, "Available quantity: %d\n", book.Quantity)

	qty, ok := c.readInt("Quantity: ")
	if !ok {
		return
	}
	if err := c.carts.AddToCart(session.Username, title, qty); err != nil {
		fmt.Fprintln(c.out, "Book not found. Cannot add to cart.")
		return
	}
	fmt.Fprintf(c.out, "%d copy/copies of %q added to cart.\n", qty, title)
}

func (c *CLI) viewCart(session models.Account) {
	fmt.Fprintln(c.out, "\n----- Your Cart -----")
	fmt.Fprintf(c.out, "[Cart of %s]\n", session.Username)
	for _, item := range c.carts.CartItems(session.Username) {
		fmt.Fprintf(c.out, "- %s: %d\n", item.Title, item.Quantity)
	}
}

func (c *CLI) checkout(session models.Account) {
	fmt.Fprintln(c.out, "\n----- Checkout -----")
	if _, err := c.carts.Checkout(session.Username); err != nil {
		fmt.Fprintln(c.out, "Cart is empty.")
		return
	}
	fmt.Fprintln(c.out, "Items checked out successfully.")
}

func (c *CLI) viewNotifications(session models.Account) {
	fmt.Fprintln(c.out, "\n----- Notifications -----")
	notes := c.carts.Notifications(session.Username)
	if len(notes) == 0 {
		fmt.Fprintln(c.out, "No notifications.")
		return
	}
	for _, note := range notes {
		fmt.Fprintln(c.out, note)
	}
}

// placeOrder bypasses the cart entirely; the order lands on the ledger with
// status Pending.
func (c *CLI) placeOrder(session models.Account) {
	fmt.Fprintln(c.out, "\n----- Place Order -----")

	title, ok := c.readLine("Enter Book Title: ")
	if !ok {
		return
	}
	book, err := c.catalog.GetBook(title)
	if err != nil {
		fmt.Fprintln(c.out, "Book not found.")
		return
	}

	quantity, ok := c.readInt("Quantity: ")
	if !ok {
		return
	}
	formatStr, ok := c.readLine("Format (ebook/physical): ")
	if !ok {
		return
	}
	if _, err := models.ParseFormat(formatStr); err != nil {
		fmt.Fprintln(c.out, "Invalid format.")
		return
	}

	price := book.Price.Mul(decimal.NewFromInt(int64(quantity)))
	c.ledger.PlaceOrder(models.NewOrder(session.Username, book.Title, price, quantity, models.OrderPending))
	fmt.Fprintln(c.out, "Order placed successfully.")
}

func (c *CLI) makePayment(session models.Account) {
	fmt.Fprintln(c.out, "\n----- Make Payment -----")

	choice, ok := c.readInt("Choose payment method (1: Card, 2: PayPal, 3: Crypto): ")
	if !ok {
		return
	}
	strategy, err := payment.ForChoice(choice)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid payment method.")
		return
	}

	confirmation, err := c.carts.Pay(session.Username, strategy)
	if err != nil {
		if errors.Is(err, storerrros.ErrCartEmpty) {
			fmt.Fprintln(c.out, "Cart is empty.")
			return
		}
		log := logger.Get()
		log.Error().Err(err).Str("username", session.Username).Msg("payment failed")
		return
	}
	fmt.Fprintln(c.out, confirmation)
}
