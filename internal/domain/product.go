package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID    uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string          `json:"name" gorm:"not null"`
	Price decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null;check:price >= 0"`
	Stock int64           `json:"stock" gorm:"not null;check:stock >= 0"`
}
