package dto

import "time"

// PlaceOrderRequest describes the checkout payload.
type PlaceOrderRequest struct {
	Address string `json:"address" binding:"required,min=10"`
	Phone   string `json:"phone" binding:"required,len=11,numeric"`
	Payment string `json:"payment" binding:"required,oneof=cash visa"`
	Coupon  string `json:"coupon" binding:"omitempty,len=5,alphanum"`
}

// OrderItemResponse is one frozen order line.
type OrderItemResponse struct {
	ProductID  int64   `json:"productId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	ItemPrice  float64 `json:"itemPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// OrderCouponResponse is the coupon snapshot frozen on the order.
type OrderCouponResponse struct {
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
}

// OrderResponse is the public view of an order.
type OrderResponse struct {
	ID         int64                `json:"id"`
	Items      []OrderItemResponse  `json:"items"`
	Address    string               `json:"address"`
	Phone      string               `json:"phone"`
	Payment    string               `json:"payment"`
	Coupon     *OrderCouponResponse `json:"coupon,omitempty"`
	Price      float64              `json:"price"`
	Status     string               `json:"status"`
	InvoiceURL string               `json:"invoiceUrl,omitempty"`
	CreatedAt  time.Time            `json:"createdAt"`
}

// PlaceOrderResponse reports checkout outcome. Results carries the hosted
// checkout redirect URL for card payments.
type PlaceOrderResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Results string         `json:"results,omitempty"`
	Order   *OrderResponse `json:"order,omitempty"`
}
