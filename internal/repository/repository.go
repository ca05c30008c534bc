package repository

import (
	"context"
	"time"

	"github.com/dbenson457/cake-solution/internal/domain"
)

type ProductRepository interface {
	// FindByID returns nil without error when the product does not exist.
	FindByID(ctx context.Context, id uint64) (*domain.Product, error)
	// FindByIDs resolves the whole id set in a single query. Ids that do
	// not exist are simply absent from the result map; an empty input
	// yields an empty map without touching the database.
	FindByIDs(ctx context.Context, ids []uint64) (map[uint64]domain.Product, error)
}

type DiscountRepository interface {
	// FindActiveByCode returns nil without error when no code matches or
	// the match has expired. Expiry is strict: expires must be after now.
	FindActiveByCode(ctx context.Context, code string, now time.Time) (*domain.DiscountCode, error)
}

type OrderRepository interface {
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID uint64) ([]domain.Order, error)
	FindItemsByOrderID(ctx context.Context, orderID uint64) ([]domain.OrderItem, error)
}
