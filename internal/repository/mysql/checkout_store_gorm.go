package mysql

import (
	"context"
	"log"

	"github.com/dbenson457/cake-solution/internal/domain"
	"github.com/dbenson457/cake-solution/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type checkoutStore struct {
	db *gorm.DB
}

func NewCheckoutStore(db *gorm.DB) repository.CheckoutStore {
	return &checkoutStore{db: db}
}

// InTransaction runs fn inside one database transaction. gorm.DB.Transaction
// commits on a nil return and rolls back on error or panic, so every exit
// path releases the transaction and restores autocommit. Correctness of the
// stock guard comes from the row lock the guarded UPDATE takes, so
// read-committed or stronger is sufficient.
func (s *checkoutStore) InTransaction(ctx context.Context, fn func(tx repository.CheckoutTx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&checkoutTx{tx: tx})
	})
}

type checkoutTx struct {
	tx *gorm.DB
}

func (c *checkoutTx) ProductsByIDs(ids []uint64) (map[uint64]domain.Product, error) {
	out := make(map[uint64]domain.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var products []domain.Product
	if err := c.tx.Where("id IN ?", ids).Find(&products).Error; err != nil {
		log.Printf("checkout batch fetch error: %v", err)
		return nil, err
	}
	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}

func (c *checkoutTx) DecrementStock(productID uint64, quantity int64) (bool, error) {
	// The stock >= quantity guard is re-evaluated at execution time under
	// the row lock, so two checkouts racing for the last unit cannot both
	// pass it. Zero rows affected means the stock is already gone.
	res := c.tx.Model(&domain.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		log.Printf("stock decrement error for product %d: %v", productID, res.Error)
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (c *checkoutTx) CreateOrder(order *domain.Order) error {
	// The association fields on Order/OrderItem exist for the schema's
	// foreign keys; inserts here must never write through them.
	res := c.tx.Omit(clause.Associations).Create(order)
	if res.Error != nil {
		log.Printf("order insert error: %v", res.Error)
		return res.Error
	}
	if order.ID == 0 {
		log.Printf("order inserted but no id assigned, rows affected: %d", res.RowsAffected)
		return domain.ErrOrderCreation
	}
	return nil
}

func (c *checkoutTx) CreateOrderItems(items []domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	if err := c.tx.Omit(clause.Associations).Create(&items).Error; err != nil {
		log.Printf("order items insert error: %v", err)
		return err
	}
	return nil
}
