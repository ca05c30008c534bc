package services

import (
	"time"

	"github.com/dbenson457/cake-solution/internal/domain"

	"github.com/shopspring/decimal"
)

func CreateTestProduct(id uint64, name string, price string, stock int64) domain.Product {
	return domain.Product{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
}

func CreateTestDiscount(id uint64, code string, percentage int, expires time.Time) *domain.DiscountCode {
	return &domain.DiscountCode{
		ID:         id,
		Code:       code,
		Percentage: percentage,
		Expires:    expires,
	}
}

const (
	TestSessionID   = "test-session"
	TestUserID      = uint64(42)
	TestPayment     = "card"
	TestProductName = "Test Product"
)
