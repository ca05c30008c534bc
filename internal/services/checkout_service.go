package services

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/dbenson457/cake-solution/internal/domain"
	rabbit "github.com/dbenson457/cake-solution/internal/infra/rabbitmq"
	"github.com/dbenson457/cake-solution/internal/repository"
	"github.com/dbenson457/cake-solution/internal/session"
)

// CheckoutService converts a session's cart into a persisted order. The
// whole write sequence (stock decrements, order row, order item rows) runs
// inside one database transaction: either everything commits or nothing
// does, and the cart is only cleared after a successful commit.
type CheckoutService struct {
	store     repository.CheckoutStore
	sessions  session.Store
	pricing   *PricingEngine
	publisher rabbit.PublisherInterface
}

func NewCheckoutService(store repository.CheckoutStore, sessions session.Store, pricing *PricingEngine, publisher rabbit.PublisherInterface) *CheckoutService {
	return &CheckoutService{
		store:     store,
		sessions:  sessions,
		pricing:   pricing,
		publisher: publisher,
	}
}

// Checkout runs the order protocol. Failures before the transaction opens
// (invalid input, empty cart) have no side effects at all; failures inside
// it roll everything back and leave the cart untouched. There is no
// automatic retry: an insufficient-stock failure names the product so the
// caller can adjust the cart and try again.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string, userID uint64, paymentMethod string) (uint64, error) {
	if userID == 0 || strings.TrimSpace(paymentMethod) == "" {
		return 0, domain.ErrInvalidInput
	}

	cart, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	total, err := s.pricing.FinalTotal(ctx, cart)
	if err != nil {
		return 0, err
	}
	if cart.IsEmpty() || !total.IsPositive() {
		return 0, domain.ErrEmptyCart
	}

	order := &domain.Order{
		UserID:        userID,
		Total:         total,
		PaymentMethod: paymentMethod,
		Status:        domain.StatusPending,
		CreatedAt:     time.Now(),
	}

	var itemCount int
	err = s.store.InTransaction(ctx, func(tx repository.CheckoutTx) error {
		ids := cart.ProductIDs()
		// Fixed ascending order so concurrent checkouts lock product
		// rows in the same sequence.
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		// Prices read here, under the transaction, are the snapshot
		// written onto the order items below.
		products, err := tx.ProductsByIDs(ids)
		if err != nil {
			return err
		}

		items := make([]domain.OrderItem, 0, len(ids))
		for _, id := range ids {
			qty := cart.Items[id]
			prod, ok := products[id]
			if !ok {
				return &domain.ProductNotFoundError{ProductID: id}
			}

			ok, err := tx.DecrementStock(id, qty)
			if err != nil {
				return err
			}
			if !ok {
				return &domain.InsufficientStockError{ProductID: id, Requested: qty}
			}

			items = append(items, domain.OrderItem{
				ProductID: id,
				Quantity:  qty,
				Price:     prod.Price,
			})
		}

		if err := tx.CreateOrder(order); err != nil {
			return domain.ErrOrderCreation
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.CreateOrderItems(items); err != nil {
			return domain.ErrOrderItemCreation
		}

		itemCount = len(items)
		return nil
	})
	if err != nil {
		return 0, err
	}

	// Committed. Clearing the session after the fact: a failure here
	// leaves a stale cart, never a lost order.
	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		log.Printf("cart clear after checkout %d failed: %v", order.ID, err)
	}

	go s.publishOrderCreatedEvent(context.Background(), order, itemCount)

	return order.ID, nil
}

func (s *CheckoutService) publishOrderCreatedEvent(ctx context.Context, order *domain.Order, itemCount int) {
	if s.publisher == nil {
		return
	}

	evt := domain.OrderCreatedEvent{
		OrderID:   order.ID,
		UserID:    order.UserID,
		Total:     order.Total,
		ItemCount: itemCount,
		CreatedAt: order.CreatedAt,
	}

	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Printf("failed to publish order.created for order %d: %v", order.ID, err)
	}
}
