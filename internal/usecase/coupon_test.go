package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/gophershop/internal/domain/errors"
	"github.com/polkiloo/gophershop/internal/test"
)

func TestCouponUseCase_Create(t *testing.T) {
	coupons := test.NewCouponRepositoryStub()
	uc := NewCouponUseCase(coupons)
	ctx := context.Background()
	future := time.Now().Add(24 * time.Hour)

	created, err := uc.Create(ctx, 1, " save5 ", 15, future)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Code != "SAVE5" {
		t.Errorf("code not normalized: %q", created.Code)
	}
	if created.Discount != 15 {
		t.Errorf("unexpected discount: %v", created.Discount)
	}

	if _, err := uc.Create(ctx, 1, "SAVE5", 10, future); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Errorf("duplicate code: got %v, want ErrAlreadyExists", err)
	}
}

func TestCouponUseCase_CreateValidation(t *testing.T) {
	uc := NewCouponUseCase(test.NewCouponRepositoryStub())
	ctx := context.Background()
	future := time.Now().Add(time.Hour)

	cases := []struct {
		name      string
		code      string
		discount  float64
		expiresAt time.Time
	}{
		{"short code", "SAVE", 10, future},
		{"long code", "SAVE10", 10, future},
		{"symbol in code", "SA-E5", 10, future},
		{"zero discount", "SAVE5", 0, future},
		{"discount above hundred", "SAVE5", 101, future},
		{"already expired", "SAVE5", 10, time.Now().Add(-time.Minute)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Create(ctx, 1, tc.code, tc.discount, tc.expiresAt); !errors.Is(err, domainErrors.ErrInvalidInput) {
				t.Errorf("got %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCouponUseCase_GetByCode(t *testing.T) {
	coupons := test.NewCouponRepositoryStub()
	uc := NewCouponUseCase(coupons)
	ctx := context.Background()

	if _, err := uc.Create(ctx, 1, "SAVE5", 20, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := uc.GetByCode(ctx, " save5 ")
	if err != nil || got.Code != "SAVE5" {
		t.Fatalf("GetByCode = %+v, %v", got, err)
	}
	if _, err := uc.GetByCode(ctx, "NOPE1"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Errorf("unknown code: got %v, want ErrNotFound", err)
	}
}
