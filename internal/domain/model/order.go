package model

import "time"

// OrderStatus describes the fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// Terminal reports whether the status permits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCanceled
}

// PaymentMethod selects how an order is paid.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentVisa PaymentMethod = "visa"
)

// OrderItem is a frozen copy of one cart line taken at checkout time.
// Later product price changes must not alter it.
type OrderItem struct {
	ProductID  int64
	Name       string
	Quantity   int
	ItemPrice  float64
	TotalPrice float64
}

// CouponSnapshot records the coupon applied to an order, if any.
type CouponSnapshot struct {
	Code     string
	Discount float64
}

// InvoiceRef points at the uploaded invoice document.
type InvoiceRef struct {
	FileID string
	URL    string
}

// Order aggregates validated cart lines with delivery and payment details.
type Order struct {
	ID        int64
	UserID    int64
	Items     []OrderItem
	Address   string
	Phone     string
	Payment   PaymentMethod
	Coupon    *CouponSnapshot
	Price     float64
	Status    OrderStatus
	Invoice   *InvoiceRef
	CreatedAt time.Time
	UpdatedAt time.Time
}
