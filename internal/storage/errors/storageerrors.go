package storerrros

import "errors"

var (
	ErrBookNotFound         = errors.New("book not found")
	ErrEmptyBooksList       = errors.New("empty books list")
	ErrIncorrectCredentials = errors.New("incorrect credentials")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrNoOrders             = errors.New("no orders yet")
)
