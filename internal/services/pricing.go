package services

import (
	"context"

	"github.com/dbenson457/cake-solution/internal/domain"
	"github.com/dbenson457/cake-solution/internal/repository"

	"github.com/shopspring/decimal"
)

// PricingEngine derives cart totals from the catalog. Entries whose product
// no longer exists contribute zero, the same skip policy CartService.Contents
// applies, so displayed line items always sum to the raw total.
type PricingEngine struct {
	products repository.ProductRepository
}

func NewPricingEngine(products repository.ProductRepository) *PricingEngine {
	return &PricingEngine{products: products}
}

func (p *PricingEngine) RawTotal(ctx context.Context, cart *domain.Cart) (decimal.Decimal, error) {
	total := decimal.Zero
	if cart == nil || cart.IsEmpty() {
		return total, nil
	}

	resolved, err := p.products.FindByIDs(ctx, cart.ProductIDs())
	if err != nil {
		return decimal.Zero, err
	}

	for id, qty := range cart.Items {
		prod, ok := resolved[id]
		if !ok {
			continue
		}
		total = total.Add(prod.Price.Mul(decimal.NewFromInt(qty)))
	}
	return total, nil
}

// FinalTotal applies the cart's active discount percentage, if any, and
// rounds to 2 decimal places (half away from zero).
func (p *PricingEngine) FinalTotal(ctx context.Context, cart *domain.Cart) (decimal.Decimal, error) {
	raw, err := p.RawTotal(ctx, cart)
	if err != nil {
		return decimal.Zero, err
	}

	if cart != nil && cart.Discount != nil {
		pct := decimal.NewFromInt(int64(*cart.Discount)).Div(decimal.NewFromInt(100))
		raw = raw.Sub(raw.Mul(pct))
	}
	return raw.Round(2), nil
}
