package model

import "time"

// Coupon grants a percentage discount until it expires. Immutable once created.
type Coupon struct {
	ID        int64
	Code      string
	Discount  float64
	ExpiresAt time.Time
	CreatedBy int64
	CreatedAt time.Time
}

// Expired reports whether the coupon can no longer be applied.
func (c *Coupon) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}
