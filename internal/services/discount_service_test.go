package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dbenson457/cake-solution/internal/domain"
	"github.com/dbenson457/cake-solution/internal/mocks"
	"github.com/dbenson457/cake-solution/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDiscountService_Apply(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		code        string
		setupMocks  func(*mocks.MockDiscountRepository)
		expectedErr error
		expectedPct int
	}{
		{
			name: "valid code activates discount",
			code: "SAVE20",
			setupMocks: func(repo *mocks.MockDiscountRepository) {
				repo.On("FindActiveByCode", mock.Anything, "SAVE20", now).
					Return(CreateTestDiscount(1, "SAVE20", 20, now.Add(24*time.Hour)), nil)
			},
			expectedPct: 20,
		},
		{
			name: "code is trimmed before lookup",
			code: "  SAVE20  ",
			setupMocks: func(repo *mocks.MockDiscountRepository) {
				repo.On("FindActiveByCode", mock.Anything, "SAVE20", now).
					Return(CreateTestDiscount(1, "SAVE20", 20, now.Add(24*time.Hour)), nil)
			},
			expectedPct: 20,
		},
		{
			name:        "empty code fails without lookup",
			code:        "   ",
			setupMocks:  func(repo *mocks.MockDiscountRepository) {},
			expectedErr: domain.ErrDiscountInvalid,
		},
		{
			name: "unknown or expired code",
			code: "NOPE",
			setupMocks: func(repo *mocks.MockDiscountRepository) {
				repo.On("FindActiveByCode", mock.Anything, "NOPE", now).Return(nil, nil)
			},
			expectedErr: domain.ErrDiscountInvalid,
		},
		{
			name: "repository error",
			code: "SAVE20",
			setupMocks: func(repo *mocks.MockDiscountRepository) {
				repo.On("FindActiveByCode", mock.Anything, "SAVE20", now).Return(nil, errors.New("db down"))
			},
			expectedErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockDiscountRepository)
			tt.setupMocks(repo)

			store := session.NewMemoryStore()
			svc := NewDiscountService(repo, store)
			svc.now = func() time.Time { return now }

			pct, err := svc.Apply(context.Background(), TestSessionID, tt.code)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPct, pct)

				cart, _ := store.Get(context.Background(), TestSessionID)
				assert.NotNil(t, cart.Discount)
				assert.Equal(t, tt.expectedPct, *cart.Discount)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestDiscountService_Apply_ExpiryBoundaryIsStrict(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expires time.Time
		wantErr bool
	}{
		{name: "expires exactly now fails", expires: now, wantErr: true},
		{name: "expires tomorrow succeeds", expires: now.Add(24 * time.Hour), wantErr: false},
		{name: "expires one instant later succeeds", expires: now.Add(time.Nanosecond), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockDiscountRepository)
			repo.On("FindActiveByCode", mock.Anything, "CODE", now).
				Return(CreateTestDiscount(1, "CODE", 20, tt.expires), nil)

			svc := NewDiscountService(repo, session.NewMemoryStore())
			svc.now = func() time.Time { return now }

			_, err := svc.Apply(context.Background(), TestSessionID, "CODE")
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrDiscountInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDiscountService_Apply_PreservesCartItems(t *testing.T) {
	now := time.Now()

	repo := new(mocks.MockDiscountRepository)
	repo.On("FindActiveByCode", mock.Anything, "SAVE10", mock.AnythingOfType("time.Time")).
		Return(CreateTestDiscount(1, "SAVE10", 10, now.Add(48*time.Hour)), nil)

	store := session.NewMemoryStore()
	cart := domain.NewCart()
	cart.Add(1, 2)
	assert.NoError(t, store.Save(context.Background(), TestSessionID, cart))

	svc := NewDiscountService(repo, store)

	_, err := svc.Apply(context.Background(), TestSessionID, "SAVE10")
	assert.NoError(t, err)

	got, _ := store.Get(context.Background(), TestSessionID)
	assert.Equal(t, int64(2), got.Items[1])
	assert.Equal(t, 10, *got.Discount)
}
