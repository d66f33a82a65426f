package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/gophershop/internal/domain/errors"
	"github.com/polkiloo/gophershop/internal/domain/model"
	"github.com/polkiloo/gophershop/internal/domain/repository"
)

// CartUseCase manages the per-user shopping cart.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// Get returns the user's cart, possibly empty.
func (u *CartUseCase) Get(ctx context.Context, userID int64) (*model.Cart, error) {
	return u.carts.Get(ctx, userID)
}

// PutItem sets the quantity for a product line after checking stock.
func (u *CartUseCase) PutItem(ctx context.Context, userID, productID int64, quantity int) error {
	if quantity <= 0 {
		return domainErrors.ErrInvalidQuantity
	}
	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if !product.InStock(quantity) {
		return &domainErrors.OutOfStockError{ProductName: product.Name, Available: product.Stock}
	}
	return u.carts.PutItem(ctx, userID, productID, quantity)
}

// RemoveItem drops a product line from the cart.
func (u *CartUseCase) RemoveItem(ctx context.Context, userID, productID int64) error {
	return u.carts.RemoveItem(ctx, userID, productID)
}

// Clear empties the cart.
func (u *CartUseCase) Clear(ctx context.Context, userID int64) error {
	return u.carts.Clear(ctx, userID)
}
