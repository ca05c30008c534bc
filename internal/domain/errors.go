package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrOutOfStock        = errors.New("requested quantity exceeds available stock")
	ErrEmptyCart         = errors.New("cart is empty or totals zero")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderCreation     = errors.New("order creation failed")
	ErrOrderItemCreation = errors.New("order item creation failed")
	ErrDiscountInvalid   = errors.New("discount code invalid or expired")
)

// ProductNotFoundError names the cart entry whose product no longer exists.
// errors.Is(err, ErrProductNotFound) matches it.
type ProductNotFoundError struct {
	ProductID uint64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}

// InsufficientStockError is the authoritative checkout-time failure: the
// guarded decrement found less stock than the cart wants. It names the
// product so the caller can reduce that line and retry.
type InsufficientStockError struct {
	ProductID uint64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d (requested %d)", e.ProductID, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
