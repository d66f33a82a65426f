package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/gophershop/internal/domain/errors"
	"github.com/polkiloo/gophershop/internal/domain/model"
	"github.com/polkiloo/gophershop/internal/test"
)

func newCartFixture(products ...*model.Product) (*CartUseCase, *test.CartRepositoryStub) {
	carts := test.NewCartRepositoryStub()
	return NewCartUseCase(carts, test.NewProductRepositoryStub(products...)), carts
}

func TestCartUseCase_PutItem(t *testing.T) {
	uc, carts := newCartFixture(
		&model.Product{ID: 1, Name: "Phone", Price: 50, FinalPrice: 50, Stock: 10},
	)
	ctx := context.Background()

	if err := uc.PutItem(ctx, 7, 1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cart, err := uc.Get(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("unexpected cart: %+v", cart)
	}

	// putting the same product again replaces the quantity
	if err := uc.PutItem(ctx, 7, 1, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cart, _ = uc.Get(ctx, 7)
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 5 {
		t.Fatalf("quantity not replaced: %+v", cart)
	}
	_ = carts
}

func TestCartUseCase_PutItemValidation(t *testing.T) {
	uc, _ := newCartFixture(
		&model.Product{ID: 1, Name: "Phone", Price: 50, FinalPrice: 50, Stock: 3},
	)
	ctx := context.Background()

	if err := uc.PutItem(ctx, 7, 1, 0); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Errorf("zero quantity: got %v, want ErrInvalidQuantity", err)
	}
	if err := uc.PutItem(ctx, 7, 99, 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Errorf("unknown product: got %v, want ErrNotFound", err)
	}

	err := uc.PutItem(ctx, 7, 1, 4)
	if !errors.Is(err, domainErrors.ErrOutOfStock) {
		t.Fatalf("over stock: got %v, want ErrOutOfStock", err)
	}
	var oos *domainErrors.OutOfStockError
	if !errors.As(err, &oos) {
		t.Fatalf("expected OutOfStockError, got %T", err)
	}
	if oos.ProductName != "Phone" || oos.Available != 3 {
		t.Errorf("unexpected detail: %+v", oos)
	}
}

func TestCartUseCase_RemoveAndClear(t *testing.T) {
	uc, carts := newCartFixture(
		&model.Product{ID: 1, Name: "Phone", Price: 50, FinalPrice: 50, Stock: 10},
		&model.Product{ID: 2, Name: "Case", Price: 5, FinalPrice: 5, Stock: 10},
	)
	ctx := context.Background()

	_ = uc.PutItem(ctx, 7, 1, 1)
	_ = uc.PutItem(ctx, 7, 2, 1)

	if err := uc.RemoveItem(ctx, 7, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.RemoveItem(ctx, 7, 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Errorf("second remove: got %v, want ErrNotFound", err)
	}

	if err := uc.Clear(ctx, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cart, _ := uc.Get(ctx, 7)
	if len(cart.Items) != 0 {
		t.Errorf("cart not empty after clear: %+v", cart.Items)
	}
	if len(carts.ClearCalls) != 1 {
		t.Errorf("expected 1 clear call, got %d", len(carts.ClearCalls))
	}
}
