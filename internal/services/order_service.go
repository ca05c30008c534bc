package services

import (
	"context"
	"errors"

	"github.com/dbenson457/cake-solution/internal/domain"
	"github.com/dbenson457/cake-solution/internal/repository"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderService is the read side: order lookups for callers that hold an
// order id from a completed checkout.
type OrderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

func (s *OrderService) GetOrderByID(ctx context.Context, id uint64) (*domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *OrderService) GetOrderItems(ctx context.Context, orderID uint64) ([]domain.OrderItem, error) {
	return s.repo.FindItemsByOrderID(ctx, orderID)
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID uint64) ([]domain.Order, error) {
	return s.repo.FindByUserID(ctx, userID)
}
