package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/gophershop/internal/domain/errors"
	"github.com/polkiloo/gophershop/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid " + name})
		return 0, false
	}
	return id, true
}

// respondError maps domain errors to HTTP statuses with a JSON body.
func respondError(c *gin.Context, err error) {
	var oos *domainErrors.OutOfStockError
	switch {
	case errors.As(err, &oos):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": oos.Error()})
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "invalid credentials"})
	case errors.Is(err, domainErrors.ErrInvalidCoupon):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "coupon invalid or expired"})
	case errors.Is(err, domainErrors.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "cart is empty"})
	case errors.Is(err, domainErrors.ErrInvalidQuantity), errors.Is(err, domainErrors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid input"})
	case errors.Is(err, domainErrors.ErrOrderNotCancelable):
		c.JSON(http.StatusConflict, gin.H{"status": "error", "message": "order can no longer be canceled"})
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"status": "error", "message": "already exists"})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal error"})
	}
}
