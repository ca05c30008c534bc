package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusFailed    OrderStatus = "failed"
	StatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID            uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID        uint64          `json:"userId" gorm:"not null;index"`
	Total         decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null;check:total >= 0"`
	PaymentMethod string          `json:"paymentMethod" gorm:"not null"`
	Status        OrderStatus     `json:"status" gorm:"type:enum('pending','confirmed','failed','cancelled');default:'pending'"`
	CreatedAt     time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	Items         []OrderItem     `json:"-" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem.Price is the unit price snapshotted when the order was placed.
// It never tracks later catalog price changes, which is also why the product
// association below must not cascade deletes: order history outlives the
// catalog row.
type OrderItem struct {
	ID        uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64          `json:"orderId" gorm:"not null;index"`
	ProductID uint64          `json:"productId" gorm:"not null;index"`
	Quantity  int64           `json:"quantity" gorm:"not null;check:quantity > 0"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null;check:price >= 0"`
	Product   Product         `json:"-" gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
