package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gophershop/internal/domain/model"
	"github.com/polkiloo/gophershop/internal/server/http/dto"
)

// CouponHandler manages coupon endpoints.
type CouponHandler struct {
	facade CouponFacade
}

// NewCouponHandler constructs CouponHandler.
func NewCouponHandler(facade CouponFacade) *CouponHandler {
	return &CouponHandler{facade: facade}
}

// Create handles POST /api/v1/coupon.
func (h *CouponHandler) Create(c *gin.Context) {
	var req dto.CouponCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	coupon, err := h.facade.CreateCoupon(c.Request.Context(), CurrentUserID(c), req.Code, req.Discount, req.ExpiresAt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCouponResponse(*coupon))
}

// Get handles GET /api/v1/coupon/:code.
func (h *CouponHandler) Get(c *gin.Context) {
	code := c.Param("code")
	coupon, err := h.facade.CouponByCode(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCouponResponse(*coupon))
}

// List handles GET /api/v1/coupon.
func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.facade.Coupons(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]dto.CouponResponse, 0, len(coupons))
	for _, coupon := range coupons {
		response = append(response, toCouponResponse(coupon))
	}
	c.JSON(http.StatusOK, response)
}

func toCouponResponse(coupon model.Coupon) dto.CouponResponse {
	return dto.CouponResponse{
		ID:        coupon.ID,
		Code:      coupon.Code,
		Discount:  coupon.Discount,
		ExpiresAt: coupon.ExpiresAt,
		CreatedAt: coupon.CreatedAt,
	}
}
