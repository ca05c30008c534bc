package services

import (
	"context"
	"strings"
	"time"

	"github.com/dbenson457/cake-solution/internal/domain"
	"github.com/dbenson457/cake-solution/internal/repository"
	"github.com/dbenson457/cake-solution/internal/session"
)

type DiscountService struct {
	discounts repository.DiscountRepository
	sessions  session.Store
	now       func() time.Time
}

func NewDiscountService(discounts repository.DiscountRepository, sessions session.Store) *DiscountService {
	return &DiscountService{
		discounts: discounts,
		sessions:  sessions,
		now:       time.Now,
	}
}

// Apply activates the code's percentage on the session's cart. Codes are
// matched with a strict expires > now filter, so a code expiring right now
// is rejected.
func (s *DiscountService) Apply(ctx context.Context, sessionID, code string) (int, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return 0, domain.ErrDiscountInvalid
	}

	now := s.now()
	dc, err := s.discounts.FindActiveByCode(ctx, code, now)
	if err != nil {
		return 0, err
	}
	// The repository already filters on expiry; re-checking here keeps the
	// strict boundary independent of the storage query.
	if dc == nil || !dc.Active(now) {
		return 0, domain.ErrDiscountInvalid
	}

	cart, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	pct := dc.Percentage
	cart.Discount = &pct
	if err := s.sessions.Save(ctx, sessionID, cart); err != nil {
		return 0, err
	}
	return pct, nil
}
