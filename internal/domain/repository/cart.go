package repository

import (
	"context"

	"github.com/polkiloo/gophershop/internal/domain/model"
)

// CartRepository describes persistence operations for user carts.
type CartRepository interface {
	Get(ctx context.Context, userID int64) (*model.Cart, error)
	// PutItem sets the quantity for a product line, inserting it when absent.
	PutItem(ctx context.Context, userID, productID int64, quantity int) error
	RemoveItem(ctx context.Context, userID, productID int64) error
	Clear(ctx context.Context, userID int64) error
}
