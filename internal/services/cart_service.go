package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/dbenson457/cake-solution/internal/domain"
	"github.com/dbenson457/cake-solution/internal/repository"
	"github.com/dbenson457/cake-solution/internal/session"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const productCacheTTL = time.Minute

type CartService struct {
	products    repository.ProductRepository
	sessions    session.Store
	redisClient *redis.Client
}

func NewCartService(products repository.ProductRepository, sessions session.Store) *CartService {
	return &CartService{
		products: products,
		sessions: sessions,
	}
}

func (s *CartService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// AddItem validates the request, checks stock and adds the line to the
// session's cart. The stock check here is advisory only: stock can change
// between add and checkout, and checkout re-validates under its transaction.
func (s *CartService) AddItem(ctx context.Context, sessionID string, productID uint64, quantity int64) error {
	if productID == 0 || quantity <= 0 {
		return domain.ErrInvalidInput
	}

	prod, err := s.getProductWithCache(ctx, productID)
	if err != nil {
		return err
	}
	if prod == nil {
		return &domain.ProductNotFoundError{ProductID: productID}
	}

	cart, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	if prod.Stock < cart.Items[productID]+quantity {
		return domain.ErrOutOfStock
	}

	cart.Add(productID, quantity)
	return s.sessions.Save(ctx, sessionID, cart)
}

// Contents resolves the cart against the catalog in one batched query.
// Entries whose product has been deleted are dropped from the result; this
// is deliberate graceful degradation and PricingEngine skips the same
// entries, so the listed subtotals always sum to RawTotal.
func (s *CartService) Contents(ctx context.Context, sessionID string) ([]domain.LineItem, error) {
	cart, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return []domain.LineItem{}, nil
	}

	resolved, err := s.products.FindByIDs(ctx, cart.ProductIDs())
	if err != nil {
		return nil, err
	}

	items := make([]domain.LineItem, 0, len(cart.Items))
	for id, qty := range cart.Items {
		prod, ok := resolved[id]
		if !ok {
			continue
		}
		items = append(items, domain.LineItem{
			Product:  prod,
			Quantity: qty,
			Subtotal: prod.Price.Mul(decimal.NewFromInt(qty)),
		})
	}
	return items, nil
}

func (s *CartService) Cart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	return s.sessions.Get(ctx, sessionID)
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	return s.sessions.Clear(ctx, sessionID)
}

func (s *CartService) getProductWithCache(ctx context.Context, productID uint64) (*domain.Product, error) {
	cacheKey := fmt.Sprintf("product:%d", productID)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var prod domain.Product
			if err := json.Unmarshal([]byte(cached), &prod); err == nil {
				return &prod, nil
			}
		}
	}

	prod, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil && prod != nil {
		if data, err := json.Marshal(prod); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, productCacheTTL)
		}
	}

	return prod, nil
}

// WarmupProductCache primes the advisory-check cache for hot products.
func (s *CartService) WarmupProductCache(ctx context.Context, productIDs []uint64) error {
	if s.redisClient == nil {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, id := range productIDs {
		id := id
		g.Go(func() error {
			prod, err := s.products.FindByID(ctx, id)
			if err != nil {
				log.Printf("cache warmup failed for product %d: %v", id, err)
				return nil
			}
			if prod != nil {
				cacheKey := fmt.Sprintf("product:%d", id)
				if data, err := json.Marshal(prod); err == nil {
					s.redisClient.Set(ctx, cacheKey, data, 5*time.Minute)
				}
			}
			return nil
		})
	}
	return g.Wait()
}
