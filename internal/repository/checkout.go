package repository

import (
	"context"

	"github.com/dbenson457/cake-solution/internal/domain"
)

// CheckoutTx is the set of operations available inside one checkout
// transaction. Every call sees and mutates uncommitted transaction state.
type CheckoutTx interface {
	// ProductsByIDs batch-fetches under the transaction. Prices read here
	// are the snapshot prices written onto order items.
	ProductsByIDs(ids []uint64) (map[uint64]domain.Product, error)
	// DecrementStock subtracts quantity guarded by stock >= quantity,
	// evaluated at execution time. Returns false when the guard rejected
	// the update, meaning a concurrent checkout already took the stock.
	DecrementStock(productID uint64, quantity int64) (bool, error)
	// CreateOrder inserts the order row and populates its generated id.
	CreateOrder(order *domain.Order) error
	CreateOrderItems(items []domain.OrderItem) error
}

// CheckoutStore scopes a transaction around fn: commit when fn returns nil,
// roll back when it returns an error or panics. The connection is back in
// its default autocommit mode on every exit path.
type CheckoutStore interface {
	InTransaction(ctx context.Context, fn func(tx CheckoutTx) error) error
}
