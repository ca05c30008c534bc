package mysql

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/dbenson457/cake-solution/internal/domain"
	"github.com/dbenson457/cake-solution/internal/repository"

	"gorm.io/gorm"
)

type discountRepo struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) repository.DiscountRepository {
	return &discountRepo{db: db}
}

func (r *discountRepo) FindActiveByCode(ctx context.Context, code string, now time.Time) (*domain.DiscountCode, error) {
	var dc domain.DiscountCode
	// Strictly greater: a code whose expiry equals now is already invalid.
	err := r.db.WithContext(ctx).
		Where("code = ? AND expires > ?", code, now).
		First(&dc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("discount FindActiveByCode error: %v", err)
		return nil, err
	}
	return &dc, nil
}
