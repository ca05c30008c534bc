package mysql

import (
	"context"
	"errors"
	"log"

	"github.com/dbenson457/cake-solution/internal/domain"
	"github.com/dbenson457/cake-solution/internal/repository"

	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) FindByID(ctx context.Context, id uint64) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("product FindByID error: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByIDs(ctx context.Context, ids []uint64) (map[uint64]domain.Product, error) {
	out := make(map[uint64]domain.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	// One IN query for the whole set; duplicates in ids are harmless and
	// missing ids are simply absent from the map.
	var products []domain.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		log.Printf("product FindByIDs error: %v", err)
		return nil, err
	}

	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}
