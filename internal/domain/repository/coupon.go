package repository

import (
	"context"
	"time"

	"github.com/polkiloo/gophershop/internal/domain/model"
)

// CouponRepository describes persistence operations for coupons.
type CouponRepository interface {
	Create(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error)
	GetByCode(ctx context.Context, code string) (*model.Coupon, error)
	// GetValidByCode returns the coupon only when it expires after now.
	GetValidByCode(ctx context.Context, code string, now time.Time) (*model.Coupon, error)
	List(ctx context.Context) ([]model.Coupon, error)
}
