package mysql

import (
	"context"
	"errors"
	"log"

	"github.com/dbenson457/cake-solution/internal/domain"
	"github.com/dbenson457/cake-solution/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("order FindByID error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByUserID(ctx context.Context, userID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("order FindByUserID error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindItemsByOrderID(ctx context.Context, orderID uint64) ([]domain.OrderItem, error) {
	var out []domain.OrderItem
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&out).Error; err != nil {
		log.Printf("order FindItemsByOrderID error: %v", err)
		return nil, err
	}
	return out, nil
}
