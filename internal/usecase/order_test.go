package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/gophershop/internal/domain/errors"
	"github.com/polkiloo/gophershop/internal/domain/model"
	"github.com/polkiloo/gophershop/internal/test"
)

type orderFixture struct {
	uc       *OrderUseCase
	users    *test.UserRepositoryStub
	products *test.ProductRepositoryStub
	carts    *test.CartRepositoryStub
	coupons  *test.CouponRepositoryStub
	orders   *test.OrderRepositoryStub
	renderer *test.RendererStub
	files    *test.FileStoreStub
	mail     *test.MailerStub
	gateway  *test.PaymentStub
}

func newOrderFixture(t *testing.T, products ...*model.Product) *orderFixture {
	t.Helper()

	f := &orderFixture{
		users:    test.NewUserRepositoryStub(),
		products: test.NewProductRepositoryStub(products...),
		carts:    test.NewCartRepositoryStub(),
		coupons:  test.NewCouponRepositoryStub(),
		orders:   test.NewOrderRepositoryStub(),
		renderer: &test.RendererStub{},
		files:    &test.FileStoreStub{},
		mail:     &test.MailerStub{},
		gateway:  &test.PaymentStub{},
	}
	f.orders.Restorer = f.products

	if _, err := f.users.Create(context.Background(), "jane@example.com", "Jane", "hash"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	opts := OrderOptions{
		Currency:      "egp",
		SuccessURL:    "https://shop.test/success",
		CancelURL:     "https://shop.test/cancel",
		InvoiceFolder: "gophershop",
		Country:       "Egypt",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.uc = NewOrderUseCase(f.users, f.products, f.carts, f.coupons, f.orders,
		f.renderer, f.files, f.mail, f.gateway, opts, logger)
	return f
}

func cashInput() PlaceOrderInput {
	return PlaceOrderInput{
		Address: "12 Nile Street, Cairo",
		Phone:   "01234567890",
		Payment: model.PaymentCash,
	}
}

func TestOrderUseCase_PlaceCash(t *testing.T) {
	f := newOrderFixture(t,
		&model.Product{ID: 1, Name: "Phone", Price: 50, FinalPrice: 50, Stock: 10},
	)
	ctx := context.Background()
	if err := f.carts.PutItem(ctx, 1, 1, 2); err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	result, err := f.uc.Place(ctx, 1, cashInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order := result.Order
	if order.Price != 100 {
		t.Errorf("order price = %v, want 100", order.Price)
	}
	if order.Status != model.OrderStatusPending {
		t.Errorf("order status = %q, want pending", order.Status)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(order.Items))
	}
	item := order.Items[0]
	if item.Name != "Phone" || item.Quantity != 2 || item.ItemPrice != 50 || item.TotalPrice != 100 {
		t.Errorf("unexpected item snapshot: %+v", item)
	}
	if result.CheckoutURL != "" {
		t.Errorf("cash order got checkout URL %q", result.CheckoutURL)
	}

	// invoice rendered, uploaded, attached and mailed
	if len(f.renderer.Rendered) != 1 {
		t.Fatalf("expected 1 rendered invoice, got %d", len(f.renderer.Rendered))
	}
	if len(f.files.Uploads) != 1 {
		t.Fatalf("expected 1 upload, got %d", len(f.files.Uploads))
	}
	upload := f.files.Uploads[0]
	if upload.Folder != "gophershop/order/invoice/1" || upload.Name != "1.pdf" {
		t.Errorf("unexpected upload target: %s/%s", upload.Folder, upload.Name)
	}
	if order.Invoice == nil || order.Invoice.URL == "" {
		t.Errorf("invoice not attached: %+v", order.Invoice)
	}
	if len(f.mail.Sent) != 1 || f.mail.Sent[0].To != "jane@example.com" {
		t.Fatalf("unexpected mail: %+v", f.mail.Sent)
	}

	// stock and cart effects happen only after the mail succeeded
	if got := f.products.Products[1].Stock; got != 8 {
		t.Errorf("stock = %d, want 8", got)
	}
	cart, _ := f.carts.Get(ctx, 1)
	if len(cart.Items) != 0 {
		t.Errorf("cart not cleared: %+v", cart.Items)
	}
	if len(f.gateway.Sessions) != 0 {
		t.Errorf("cash order reached the payment gateway")
	}
}

func TestOrderUseCase_PlaceTotalAcrossLines(t *testing.T) {
	f := newOrderFixture(t,
		&model.Product{ID: 1, Name: "Phone", Price: 50, FinalPrice: 45, Stock: 10},
		&model.Product{ID: 2, Name: "Case", Price: 10, FinalPrice: 10, Stock: 10},
	)
	ctx := context.Background()
	_ = f.carts.PutItem(ctx, 1, 1, 2)
	_ = f.carts.PutItem(ctx, 1, 2, 3)

	result, err := f.uc.Place(ctx, 1, cashInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// discounted unit prices are what the snapshot freezes
	if result.Order.Price != 2*45+3*10 {
		t.Errorf("order price = %v, want %v", result.Order.Price, 2*45+3*10)
	}
}

func TestOrderUseCase_PlaceEmptyCart(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.uc.Place(context.Background(), 1, cashInput())
	if !errors.Is(err, domainErrors.ErrEmptyCart) {
		t.Fatalf("got %v, want ErrEmptyCart", err)
	}
	if len(f.orders.Orders) != 0 {
		t.Errorf("order created from empty cart")
	}
}

func TestOrderUseCase_PlaceInsufficientStock(t *testing.T) {
	f := newOrderFixture(t,
		&model.Product{ID: 1, Name: "Phone", Price: 50, FinalPrice: 50, Stock: 1},
	)
	ctx := context.Background()
	_ = f.carts.PutItem(ctx, 1, 1, 2)

	_, err := f.uc.Place(ctx, 1, cashInput())
	if !errors.Is(err, domainErrors.ErrOutOfStock) {
		t.Fatalf("got %v, want ErrOutOfStock", err)
	}
	var oos *domainErrors.OutOfStockError
	if !errors.As(err, &oos) || oos.ProductName != "Phone" || oos.Available != 1 {
		t.Errorf("unexpected detail: %v", err)
	}
	if len(f.orders.Orders) != 0 {
		t.Errorf("order created despite insufficient stock")
	}
	if f.products.Products[1].Stock != 1 {
		t.Errorf("stock mutated: %d", f.products.Products[1].Stock)
	}
}

func TestOrderUseCase_PlaceExpiredCoupon(t *testing.T) {
	f := newOrderFixture(t,
		&model.Product{ID: 1, Name: "Phone", Price: 50, FinalPrice: 50, Stock: 10},
	)
	ctx := context.Background()
	_ = f.carts.PutItem(ctx, 1, 1, 1)
	f.coupons.Coupons["SAVE1"] = &model.Coupon{
		ID: 1, Code: "SAVE1", Discount: 10, ExpiresAt: time.Now().Add(-time.Hour),
	}

	in := cashInput()
	in.CouponCode = "SAVE1"
	_, err := f.uc.Place(ctx, 1, in)
	if !errors.Is(err, domainErrors.ErrInvalidCoupon) {
		t.Fatalf("got %v, want ErrInvalidCoupon", err)
	}
	if len(f.orders.Orders) != 0 {
		t.Errorf("order created with expired coupon")
	}
}

func TestOrderUseCase_PlaceValidCouponSnapshot(t *testing.T) {
	f := newOrderFixture(t,
		&model.Product{ID: 1, Name: "Phone", Price: 50, FinalPrice: 50, Stock: 10},
	)
	ctx := context.Background()
	_ = f.carts.PutItem(ctx, 1, 1, 1)
	f.coupons.Coupons["SAVE2"] = &model.Coupon{
		ID: 1, Code: "SAVE2", Discount: 25, ExpiresAt: time.Now().Add(time.Hour),
	}

	in := cashInput()
	in.CouponCode = "SAVE2"
	result, err := f.uc.Place(ctx, 1, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Order.Coupon == nil || result.Order.Coupon.Code != "SAVE2" || result.Order.Coupon.Discount != 25 {
		t.Errorf("coupon snapshot missing or wrong: %+v", result.Order.Coupon)
	}
}

func TestOrderUseCase_PlaceMailFailureKeepsStockAndCart(t *testing.T) {
	f := newOrderFixture(t,
		&model.Product{ID: 1, Name: "Phone", Price: 50, FinalPrice: 50, Stock: 10},
	)
	f.mail.Err = errors.New("smtp unreachable")
	ctx := context.Background()
	_ = f.carts.PutItem(ctx, 1, 1, 2)

	result, err := f.uc.Place(ctx, 1, cashInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Order.Status != model.OrderStatusPending {
		t.Errorf("order status = %q, want pending", result.Order.Status)
	}
	if f.products.Products[1].Stock != 10 {
		t.Errorf("stock = %d, want untouched 10", f.products.Products[1].Stock)
	}
	cart, _ := f.carts.Get(ctx, 1)
	if len(cart.Items) != 1 {
		t.Errorf("cart cleared despite mail failure: %+v", cart.Items)
	}
	if len(f.products.DecrementCalls) != 0 {
		t.Errorf("stock decrement attempted despite mail failure")
	}
	// the invoice itself was still produced and attached
	if result.Order.Invoice == nil {
		t.Errorf("invoice not attached")
	}
}

func TestOrderUseCase_PlaceVisaCreatesCheckout(t *testing.T) {
	f := newOrderFixture(t,
		&model.Product{ID: 1, Name: "Phone", Price: 50, FinalPrice: 50, Stock: 10,
			Images: []model.ProductImage{{ID: "img1", URL: "https://img.test/phone.png"}}},
	)
	ctx := context.Background()
	_ = f.carts.PutItem(ctx, 1, 1, 2)
	f.coupons.Coupons["SAVE2"] = &model.Coupon{
		ID: 1, Code: "SAVE2", Discount: 25, ExpiresAt: time.Now().Add(time.Hour),
	}

	in := cashInput()
	in.Payment = model.PaymentVisa
	in.CouponCode = "SAVE2"
	result, err := f.uc.Place(ctx, 1, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CheckoutURL == "" || !strings.HasPrefix(result.CheckoutURL, "https://") {
		t.Fatalf("unexpected checkout URL %q", result.CheckoutURL)
	}

	if len(f.gateway.Discounts) != 1 || f.gateway.Discounts[0] != 25 {
		t.Errorf("discount not registered: %+v", f.gateway.Discounts)
	}
	if len(f.gateway.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(f.gateway.Sessions))
	}
	session := f.gateway.Sessions[0]
	if session.ClientReference != "1" {
		t.Errorf("session reference = %q, want order id", session.ClientReference)
	}
	if session.Currency != "egp" || session.DiscountID != "disc_1" {
		t.Errorf("unexpected session: %+v", session)
	}
	if len(session.Items) != 1 || session.Items[0].ImageURL != "https://img.test/phone.png" {
		t.Errorf("unexpected session items: %+v", session.Items)
	}
}

func TestOrderUseCase_PlaceVisaWithoutCouponSkipsDiscount(t *testing.T) {
	f := newOrderFixture(t,
		&model.Product{ID: 1, Name: "Phone", Price: 50, FinalPrice: 50, Stock: 10},
	)
	ctx := context.Background()
	_ = f.carts.PutItem(ctx, 1, 1, 1)

	in := cashInput()
	in.Payment = model.PaymentVisa
	if _, err := f.uc.Place(ctx, 1, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.gateway.Discounts) != 0 {
		t.Errorf("discount registered without coupon")
	}
	if len(f.gateway.Sessions) != 1 || f.gateway.Sessions[0].DiscountID != "" {
		t.Errorf("unexpected session: %+v", f.gateway.Sessions)
	}
}

func TestOrderUseCase_PlaceInvalidPaymentMethod(t *testing.T) {
	f := newOrderFixture(t)

	in := cashInput()
	in.Payment = "bitcoin"
	_, err := f.uc.Place(context.Background(), 1, in)
	if !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestOrderUseCase_PlaceUnknownUser(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.uc.Place(context.Background(), 42, cashInput())
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestOrderUseCase_Cancel(t *testing.T) {
	f := newOrderFixture(t,
		&model.Product{ID: 1, Name: "Phone", Price: 50, FinalPrice: 50, Stock: 10},
	)
	ctx := context.Background()
	_ = f.carts.PutItem(ctx, 1, 1, 2)

	result, err := f.uc.Place(ctx, 1, cashInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.products.Products[1].Stock != 8 {
		t.Fatalf("stock = %d after placement, want 8", f.products.Products[1].Stock)
	}

	canceled, err := f.uc.Cancel(ctx, 1, result.Order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if canceled.Status != model.OrderStatusCanceled {
		t.Errorf("status = %q, want canceled", canceled.Status)
	}
	if f.products.Products[1].Stock != 10 {
		t.Errorf("stock = %d after cancel, want 10", f.products.Products[1].Stock)
	}

	// canceling again must not restore stock twice
	if _, err := f.uc.Cancel(ctx, 1, result.Order.ID); !errors.Is(err, domainErrors.ErrOrderNotCancelable) {
		t.Fatalf("second cancel: got %v, want ErrOrderNotCancelable", err)
	}
	if f.products.Products[1].Stock != 10 {
		t.Errorf("stock restored twice: %d", f.products.Products[1].Stock)
	}
}

func TestOrderUseCase_CancelShipped(t *testing.T) {
	f := newOrderFixture(t,
		&model.Product{ID: 1, Name: "Phone", Price: 50, FinalPrice: 50, Stock: 10},
	)
	ctx := context.Background()
	_ = f.carts.PutItem(ctx, 1, 1, 1)

	result, err := f.uc.Place(ctx, 1, cashInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.orders.Orders[result.Order.ID].Status = model.OrderStatusShipped

	if _, err := f.uc.Cancel(ctx, 1, result.Order.ID); !errors.Is(err, domainErrors.ErrOrderNotCancelable) {
		t.Fatalf("got %v, want ErrOrderNotCancelable", err)
	}
}

func TestOrderUseCase_ListByUser(t *testing.T) {
	f := newOrderFixture(t,
		&model.Product{ID: 1, Name: "Phone", Price: 50, FinalPrice: 50, Stock: 10},
	)
	ctx := context.Background()
	_ = f.carts.PutItem(ctx, 1, 1, 1)
	if _, err := f.uc.Place(ctx, 1, cashInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orders, err := f.uc.ListByUser(ctx, 1)
	if err != nil || len(orders) != 1 {
		t.Fatalf("ListByUser = %d orders, %v", len(orders), err)
	}
	none, err := f.uc.ListByUser(ctx, 2)
	if err != nil || len(none) != 0 {
		t.Fatalf("ListByUser(other) = %d orders, %v", len(none), err)
	}
}
