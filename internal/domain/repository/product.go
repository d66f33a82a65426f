package repository

import (
	"context"

	"github.com/polkiloo/gophershop/internal/domain/model"
)

// ProductFilter narrows product listings.
type ProductFilter struct {
	CategoryID *int64
	BrandID    *int64
}

// ProductRepository describes persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	SetStock(ctx context.Context, id int64, stock int) error
	// DecrementStock atomically subtracts the given quantities, refusing any
	// line whose product would go below zero.
	DecrementStock(ctx context.Context, items []model.OrderItem) error
	RestoreStock(ctx context.Context, items []model.OrderItem) error
}
