package dto

import "time"

// CouponCreateRequest describes a new discount coupon.
type CouponCreateRequest struct {
	Code      string    `json:"code" binding:"required,len=5,alphanum"`
	Discount  float64   `json:"discount" binding:"required,gt=0,lte=100"`
	ExpiresAt time.Time `json:"expiresAt" binding:"required"`
}

// CouponResponse is the public view of a coupon.
type CouponResponse struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Discount  float64   `json:"discount"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
