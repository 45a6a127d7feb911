package payment

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrUnknownStrategy = errors.New("unknown payment method")

// Strategy simulates a payment. Pay performs no real settlement; it returns
// the confirmation line for the caller to print.
type Strategy interface {
	Pay(username string, amount decimal.Decimal) string
}

type CreditCard struct{}

func (CreditCard) Pay(username string, amount decimal.Decimal) string {
	return fmt.Sprintf("%s paid $%s via Credit Card.", username, amount.StringFixed(2))
}

type PayPal struct{}

func (PayPal) Pay(username string, amount decimal.Decimal) string {
	return fmt.Sprintf("%s paid $%s via PayPal.", username, amount.StringFixed(2))
}

type Crypto struct{}

func (Crypto) Pay(username string, amount decimal.Decimal) string {
	return fmt.Sprintf("%s paid $%s via Crypto.", username, amount.StringFixed(2))
}

// ForChoice maps a menu index to a strategy.
func ForChoice(choice int) (Strategy, error) {
	switch choice {
	case 1:
		return CreditCard{}, nil
	case 2:
		return PayPal{}, nil
	case 3:
		return Crypto{}, nil
	default:
		return nil, ErrUnknownStrategy
	}
}
