package domain

import "github.com/shopspring/decimal"

// Cart is the session-scoped aggregate: line quantities keyed by product id
// plus the currently active discount percentage, if any. Keeping the discount
// inside the same aggregate means it is saved, loaded and cleared together
// with the items and cannot drift out of sync with them.
type Cart struct {
	Items    map[uint64]int64 `json:"items"`
	Discount *int             `json:"discount,omitempty"`
}

func NewCart() *Cart {
	return &Cart{Items: make(map[uint64]int64)}
}

// Add increments an existing entry or inserts a new one.
func (c *Cart) Add(productID uint64, quantity int64) {
	if c.Items == nil {
		c.Items = make(map[uint64]int64)
	}
	c.Items[productID] += quantity
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) ProductIDs() []uint64 {
	ids := make([]uint64, 0, len(c.Items))
	for id := range c.Items {
		ids = append(ids, id)
	}
	return ids
}

// Clear empties both the entries and the discount.
func (c *Cart) Clear() {
	c.Items = make(map[uint64]int64)
	c.Discount = nil
}

// LineItem is one resolved cart row: the product as currently cataloged,
// the quantity held in the session, and their subtotal.
type LineItem struct {
	Product  Product         `json:"product"`
	Quantity int64           `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}
