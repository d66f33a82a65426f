package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gophershop/internal/domain/model"
	"github.com/polkiloo/gophershop/internal/server/http/dto"
)

// OrderHandler manages checkout and order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/v1/order.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	order, checkoutURL, err := h.facade.PlaceOrder(
		c.Request.Context(),
		CurrentUserID(c),
		req.Address,
		req.Phone,
		model.PaymentMethod(req.Payment),
		req.Coupon,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.PlaceOrderResponse{Status: "success"}
	orderView := toOrderResponse(*order)
	response.Order = &orderView
	if checkoutURL != "" {
		response.Results = checkoutURL
	} else {
		response.Message = "order placed"
	}
	c.JSON(http.StatusOK, response)
}

// Cancel handles PATCH /api/v1/order/:orderId.
func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}
	order, err := h.facade.CancelOrder(c.Request.Context(), CurrentUserID(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	view := toOrderResponse(*order)
	c.JSON(http.StatusOK, dto.PlaceOrderResponse{
		Status:  "success",
		Message: "order canceled",
		Order:   &view,
	})
}

// List handles GET /api/v1/order.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, toOrderResponse(order))
	}
	c.JSON(http.StatusOK, response)
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:  item.ProductID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			ItemPrice:  item.ItemPrice,
			TotalPrice: item.TotalPrice,
		})
	}
	response := dto.OrderResponse{
		ID:        order.ID,
		Items:     items,
		Address:   order.Address,
		Phone:     order.Phone,
		Payment:   string(order.Payment),
		Price:     order.Price,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}
	if order.Coupon != nil {
		response.Coupon = &dto.OrderCouponResponse{Code: order.Coupon.Code, Discount: order.Coupon.Discount}
	}
	if order.Invoice != nil {
		response.InvoiceURL = order.Invoice.URL
	}
	return response
}
