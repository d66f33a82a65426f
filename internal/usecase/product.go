package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/gophershop/internal/domain/errors"
	"github.com/polkiloo/gophershop/internal/domain/model"
	"github.com/polkiloo/gophershop/internal/domain/repository"
)

// ProductUseCase manages catalog products.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// Create validates and persists a new product.
func (u *ProductUseCase) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" || product.Price <= 0 || product.Stock < 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	if product.DiscountPercent < 0 || product.DiscountPercent >= 100 {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.products.Create(ctx, product)
}

// Get fetches a product by id.
func (u *ProductUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// List returns products matching the filter, newest first.
func (u *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	return u.products.List(ctx, filter)
}

// SetStock replaces the available stock count of a product.
func (u *ProductUseCase) SetStock(ctx context.Context, id int64, stock int) error {
	if stock < 0 {
		return domainErrors.ErrInvalidQuantity
	}
	return u.products.SetStock(ctx, id, stock)
}
