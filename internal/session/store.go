// Package session holds the per-session cart state. A session only ever
// sees its own cart; nothing here touches the relational database.
package session

import (
	"context"

	"github.com/dbenson457/cake-solution/internal/domain"
)

type Store interface {
	// Get returns the session's cart, or a fresh empty cart when the
	// session has none yet.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error
	Clear(ctx context.Context, sessionID string) error
}
