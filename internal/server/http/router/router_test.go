package router_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gophershop/internal/app"
	"github.com/polkiloo/gophershop/internal/server/http/router"
	testhelpers "github.com/polkiloo/gophershop/internal/test"
	"github.com/polkiloo/gophershop/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()

	users := testhelpers.NewUserRepositoryStub()
	if _, err := users.Create(context.Background(), "jane@example.com", "Jane", "hash:secret"); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	products := testhelpers.NewProductRepositoryStub()
	carts := testhelpers.NewCartRepositoryStub()
	coupons := testhelpers.NewCouponRepositoryStub()
	orders := testhelpers.NewOrderRepositoryStub()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	orderUC := usecase.NewOrderUseCase(users, products, carts, coupons, orders,
		&testhelpers.RendererStub{}, &testhelpers.FileStoreStub{}, &testhelpers.MailerStub{}, &testhelpers.PaymentStub{},
		usecase.OrderOptions{Currency: "egp", InvoiceFolder: "gophershop"}, logger)

	facade := app.NewShopFacade(
		usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{}),
		usecase.NewCatalogUseCase(
			testhelpers.NewCategoryRepositoryStub(),
			testhelpers.NewSubcategoryRepositoryStub(),
			testhelpers.NewBrandRepositoryStub(),
		),
		usecase.NewProductUseCase(products),
		usecase.NewCouponUseCase(coupons),
		usecase.NewCartUseCase(carts, products),
		orderUC,
	)
	return router.Setup(facade, logger)
}

func TestPublicRoutesNeedNoToken(t *testing.T) {
	engine := newEngine(t)

	for _, path := range []string{
		"/api/v1/category",
		"/api/v1/subcategory",
		"/api/v1/brand",
		"/api/v1/product",
	} {
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, resp.Code)
		}
	}
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	engine := newEngine(t)

	cases := []struct{ method, path string }{
		{http.MethodPost, "/api/v1/category"},
		{http.MethodPost, "/api/v1/product"},
		{http.MethodPost, "/api/v1/coupon"},
		{http.MethodGet, "/api/v1/cart"},
		{http.MethodPost, "/api/v1/order"},
		{http.MethodGet, "/api/v1/order"},
		{http.MethodPatch, "/api/v1/order/1"},
	}
	for _, tc := range cases {
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, httptest.NewRequest(tc.method, tc.path, nil))
		if resp.Code != http.StatusUnauthorized {
			t.Errorf("%s %s = %d, want 401", tc.method, tc.path, resp.Code)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	engine := newEngine(t)

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/nothing", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("unknown route = %d, want 404", resp.Code)
	}
}
