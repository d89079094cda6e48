package service

import "errors"

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotImplemented    = errors.New("not implemented")
	ErrValidation        = errors.New("validation failed")
	ErrUserExists        = errors.New("user with this phone or email already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrAddressNotFound   = errors.New("address not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryCycle     = errors.New("category parent would form a cycle")
	ErrProductNotFound   = errors.New("product not found")
	ErrToppingNotFound   = errors.New("topping not found")
	ErrToppingNotAllowed = errors.New("topping is not available for this product")
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyItems        = errors.New("empty items")
	ErrDuplicateItems    = errors.New("order items contain duplicate products")
	ErrQuantityInvalid   = errors.New("quantity must be > 0")
	ErrAddressRequired   = errors.New("address is required for delivery orders")
	ErrStatusTransition  = errors.New("status transition not allowed")
	ErrAlreadyCancelled  = errors.New("order already cancelled")
	ErrPaymentExists     = errors.New("payment for this order already exists")
	ErrPaymentAmount     = errors.New("payment amount does not match order total")
)
