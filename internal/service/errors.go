package service

import "errors"

var (
	ErrEmptyCart       = errors.New("cart is empty, nothing to checkout")
	ErrUnknownProduct  = errors.New("product not found in catalog")
	ErrUnknownCurrency = errors.New("unknown currency code")
)
