package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/polkiloo/gophershop/internal/domain/model"
	testhelpers "github.com/polkiloo/gophershop/internal/test"
	"github.com/polkiloo/gophershop/internal/usecase"
)

func newFacade() (*ShopFacade, *testhelpers.ProductRepositoryStub, *testhelpers.CartRepositoryStub, *testhelpers.OrderRepositoryStub) {
	users := testhelpers.NewUserRepositoryStub()
	categories := testhelpers.NewCategoryRepositoryStub()
	subcategories := testhelpers.NewSubcategoryRepositoryStub()
	brands := testhelpers.NewBrandRepositoryStub()
	products := testhelpers.NewProductRepositoryStub(
		&model.Product{ID: 1, Name: "Phone", CategoryID: 1, Price: 50, FinalPrice: 50, Stock: 10},
	)
	carts := testhelpers.NewCartRepositoryStub()
	coupons := testhelpers.NewCouponRepositoryStub()
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Restorer = products

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	orderUC := usecase.NewOrderUseCase(users, products, carts, coupons, orders,
		&testhelpers.RendererStub{}, &testhelpers.FileStoreStub{}, &testhelpers.MailerStub{}, &testhelpers.PaymentStub{},
		usecase.OrderOptions{Currency: "egp", InvoiceFolder: "gophershop", Country: "Egypt"}, logger)

	facade := NewShopFacade(
		usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{}),
		usecase.NewCatalogUseCase(categories, subcategories, brands),
		usecase.NewProductUseCase(products),
		usecase.NewCouponUseCase(coupons),
		usecase.NewCartUseCase(carts, products),
		orderUC,
	)
	return facade, products, carts, orders
}

func TestShopFacadeAuth(t *testing.T) {
	facade, _, _, _ := newFacade()
	ctx := context.Background()

	user, token, err := facade.Register(ctx, "Jane", "jane@example.com", "secret")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" || user.Email != "jane@example.com" {
		t.Fatalf("unexpected register result: %v %q", user, token)
	}

	if _, _, err := facade.Authenticate(ctx, "jane@example.com", "secret"); err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if _, err := facade.ParseToken("anything"); err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
}

func TestShopFacadeCatalog(t *testing.T) {
	facade, _, _, _ := newFacade()
	ctx := context.Background()

	category, err := facade.CreateCategory(ctx, 1, "Phones")
	if err != nil {
		t.Fatalf("create category returned error: %v", err)
	}
	sub, err := facade.CreateSubcategory(ctx, category.ID, "Android")
	if err != nil {
		t.Fatalf("create subcategory returned error: %v", err)
	}
	if sub.CategoryID != category.ID {
		t.Fatalf("subcategory not linked: %+v", sub)
	}
	brands, err := facade.Brands(ctx)
	if err != nil || len(brands) != 0 {
		t.Fatalf("brands = %v, %v", brands, err)
	}
}

func TestShopFacadeCheckout(t *testing.T) {
	facade, products, carts, orders := newFacade()
	ctx := context.Background()

	if _, _, err := facade.Register(ctx, "Jane", "jane@example.com", "secret"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if err := facade.PutCartItem(ctx, 1, 1, 2); err != nil {
		t.Fatalf("put cart item returned error: %v", err)
	}

	order, checkoutURL, err := facade.PlaceOrder(ctx, 1, "12 Nile Street, Cairo", "01234567890", model.PaymentCash, "")
	if err != nil {
		t.Fatalf("place order returned error: %v", err)
	}
	if checkoutURL != "" {
		t.Fatalf("cash order got checkout URL %q", checkoutURL)
	}
	if order.Price != 100 {
		t.Fatalf("order price = %v, want 100", order.Price)
	}
	if products.Products[1].Stock != 8 {
		t.Fatalf("stock = %d, want 8", products.Products[1].Stock)
	}
	cart, _ := carts.Get(ctx, 1)
	if len(cart.Items) != 0 {
		t.Fatalf("cart not cleared: %+v", cart.Items)
	}

	canceled, err := facade.CancelOrder(ctx, 1, order.ID)
	if err != nil {
		t.Fatalf("cancel returned error: %v", err)
	}
	if canceled.Status != model.OrderStatusCanceled {
		t.Fatalf("status = %q, want canceled", canceled.Status)
	}
	if products.Products[1].Stock != 10 {
		t.Fatalf("stock = %d after cancel, want 10", products.Products[1].Stock)
	}
	_ = orders
}

func TestShopFacadeOrders(t *testing.T) {
	facade, _, _, _ := newFacade()
	ctx := context.Background()

	listed, err := facade.Orders(ctx, 1)
	if err != nil || len(listed) != 0 {
		t.Fatalf("orders = %v, %v", listed, err)
	}
}
