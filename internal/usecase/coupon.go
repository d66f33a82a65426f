package usecase

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/gophershop/internal/domain/errors"
	"github.com/polkiloo/gophershop/internal/domain/model"
	"github.com/polkiloo/gophershop/internal/domain/repository"
)

// CouponUseCase manages discount coupons. Coupons are immutable once created.
type CouponUseCase struct {
	coupons repository.CouponRepository
}

// NewCouponUseCase constructs CouponUseCase.
func NewCouponUseCase(coupons repository.CouponRepository) *CouponUseCase {
	return &CouponUseCase{coupons: coupons}
}

// Create validates and persists a new coupon.
func (u *CouponUseCase) Create(ctx context.Context, userID int64, code string, discount float64, expiresAt time.Time) (*model.Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !ValidateCouponCode(code) {
		return nil, domainErrors.ErrInvalidInput
	}
	if discount <= 0 || discount > 100 {
		return nil, domainErrors.ErrInvalidInput
	}
	if !expiresAt.After(time.Now()) {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.coupons.Create(ctx, &model.Coupon{Code: code, Discount: discount, ExpiresAt: expiresAt, CreatedBy: userID})
}

// GetByCode fetches a coupon regardless of expiry.
func (u *CouponUseCase) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	return u.coupons.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
}

// List returns all coupons, newest first.
func (u *CouponUseCase) List(ctx context.Context) ([]model.Coupon, error) {
	return u.coupons.List(ctx)
}
