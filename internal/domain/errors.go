package domain

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrOrderNotFound    = errors.New("order not found")

	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInvalidCustomerName = errors.New("customer name is blank")
	ErrInvalidStatus       = errors.New("invalid order status")

	ErrCategoryInUse = errors.New("category is referenced by products")

	// ErrCheckoutFailed wraps any failure inside the checkout transaction,
	// the underlying cause stays reachable through errors.Is.
	ErrCheckoutFailed = errors.New("checkout failed")
)
