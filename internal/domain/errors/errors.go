package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidCoupon      = errors.New("invalid or expired coupon")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrOutOfStock         = errors.New("out of stock")
	ErrOrderNotCancelable = errors.New("order can no longer be canceled")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidInput       = errors.New("invalid input")
)
