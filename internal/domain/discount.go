package domain

import "time"

// DiscountCode is read-only to this service: codes are looked up by exact
// code and filtered to expires strictly after the lookup time. A code that
// expires today is already invalid.
type DiscountCode struct {
	ID         uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Code       string    `json:"code" gorm:"uniqueIndex;not null"`
	Percentage int       `json:"percentage" gorm:"not null;check:percentage > 0 AND percentage <= 100"`
	Expires    time.Time `json:"expires" gorm:"not null"`
}

// Active reports whether the code is still usable at now. The boundary is
// strict: a code whose expiry equals now is no longer active.
func (d *DiscountCode) Active(now time.Time) bool {
	return d.Expires.After(now)
}
