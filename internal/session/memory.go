package session

import (
	"context"
	"sync"

	"github.com/dbenson457/cake-solution/internal/domain"
)

// MemoryStore keeps carts in process memory. Used in tests and when no
// redis is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]*domain.Cart)}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return domain.NewCart(), nil
	}
	return copyCart(cart), nil
}

func (s *MemoryStore) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[sessionID] = copyCart(cart)
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}

// copyCart keeps callers from mutating stored state through shared maps,
// matching the isolation a serialized store gives for free.
func copyCart(cart *domain.Cart) *domain.Cart {
	out := domain.NewCart()
	for id, qty := range cart.Items {
		out.Items[id] = qty
	}
	if cart.Discount != nil {
		d := *cart.Discount
		out.Discount = &d
	}
	return out
}
