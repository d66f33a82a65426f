package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/polkiloo/gophershop/internal/adapter/filestore"
	"github.com/polkiloo/gophershop/internal/adapter/mailer"
	"github.com/polkiloo/gophershop/internal/adapter/payment"
	domainErrors "github.com/polkiloo/gophershop/internal/domain/errors"
	"github.com/polkiloo/gophershop/internal/domain/model"
	"github.com/polkiloo/gophershop/internal/domain/repository"
	"github.com/polkiloo/gophershop/internal/invoice"
)

// OrderOptions carries checkout settings that come from configuration.
type OrderOptions struct {
	Currency      string
	SuccessURL    string
	CancelURL     string
	InvoiceFolder string
	Country       string
}

// PlaceOrderInput is the validated checkout request.
type PlaceOrderInput struct {
	Address    string
	Phone      string
	Payment    model.PaymentMethod
	CouponCode string
}

// PlaceOrderResult is the checkout outcome. CheckoutURL is set for card payments.
type PlaceOrderResult struct {
	Order       *model.Order
	CheckoutURL string
}

// OrderUseCase drives order placement and cancellation.
type OrderUseCase struct {
	users    repository.UserRepository
	products repository.ProductRepository
	carts    repository.CartRepository
	coupons  repository.CouponRepository
	orders   repository.OrderRepository

	renderer invoice.Renderer
	files    filestore.Client
	mail     mailer.Sender
	gateway  payment.Client

	opts   OrderOptions
	logger *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	users repository.UserRepository,
	products repository.ProductRepository,
	carts repository.CartRepository,
	coupons repository.CouponRepository,
	orders repository.OrderRepository,
	renderer invoice.Renderer,
	files filestore.Client,
	mail mailer.Sender,
	gateway payment.Client,
	opts OrderOptions,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		users:    users,
		products: products,
		carts:    carts,
		coupons:  coupons,
		orders:   orders,
		renderer: renderer,
		files:    files,
		mail:     mail,
		gateway:  gateway,
		opts:     opts,
		logger:   logger,
	}
}

// Place runs the checkout sequence: coupon and stock validation, order
// persistence, invoice generation and mailing, post-commit stock/cart
// effects, and checkout session creation for card payments.
//
// A failure before the order insert creates nothing. A failure after it
// leaves the pending order in place without invoice or stock effects.
func (u *OrderUseCase) Place(ctx context.Context, userID int64, in PlaceOrderInput) (*PlaceOrderResult, error) {
	if in.Payment != model.PaymentCash && in.Payment != model.PaymentVisa {
		return nil, domainErrors.ErrInvalidInput
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var coupon *model.Coupon
	if in.CouponCode != "" {
		coupon, err = u.coupons.GetValidByCode(ctx, in.CouponCode, time.Now())
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return nil, domainErrors.ErrInvalidCoupon
			}
			return nil, err
		}
	}

	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}

	items := make([]model.OrderItem, 0, len(cart.Items))
	checkoutItems := make([]payment.CheckoutItem, 0, len(cart.Items))
	var total float64
	for _, line := range cart.Items {
		product, err := u.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return nil, fmt.Errorf("product %d: %w", line.ProductID, domainErrors.ErrNotFound)
			}
			return nil, err
		}
		if !product.InStock(line.Quantity) {
			return nil, &domainErrors.OutOfStockError{ProductName: product.Name, Available: product.Stock}
		}

		lineTotal := float64(line.Quantity) * product.FinalPrice
		items = append(items, model.OrderItem{
			ProductID:  product.ID,
			Name:       product.Name,
			Quantity:   line.Quantity,
			ItemPrice:  product.FinalPrice,
			TotalPrice: lineTotal,
		})
		checkoutItem := payment.CheckoutItem{
			Name:       product.Name,
			UnitAmount: product.FinalPrice,
			Quantity:   line.Quantity,
		}
		if len(product.Images) > 0 {
			checkoutItem.ImageURL = product.Images[0].URL
		}
		checkoutItems = append(checkoutItems, checkoutItem)
		total += lineTotal
	}

	order := &model.Order{
		UserID:  userID,
		Items:   items,
		Address: in.Address,
		Phone:   in.Phone,
		Payment: in.Payment,
		Price:   total,
		Status:  model.OrderStatusPending,
	}
	if coupon != nil {
		order.Coupon = &model.CouponSnapshot{Code: coupon.Code, Discount: coupon.Discount}
	}

	order, err = u.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	if err := u.dispatchInvoice(ctx, user, order); err != nil {
		return nil, err
	}

	result := &PlaceOrderResult{Order: order}
	if in.Payment == model.PaymentVisa {
		url, err := u.createCheckout(ctx, order, checkoutItems)
		if err != nil {
			return nil, err
		}
		result.CheckoutURL = url
	}
	return result, nil
}

// dispatchInvoice renders, stores and emails the invoice. Stock decrement and
// cart clear run only after the mail is reported sent; a mail failure leaves
// both untouched and the order pending.
func (u *OrderUseCase) dispatchInvoice(ctx context.Context, user *model.User, order *model.Order) error {
	doc := invoice.Document{
		Number:       order.ID,
		CustomerName: user.Name,
		Address:      order.Address,
		Country:      u.opts.Country,
		Items:        order.Items,
		Subtotal:     order.Price,
		Paid:         order.Price,
		IssuedAt:     order.CreatedAt,
	}
	content, err := u.renderer.Render(doc)
	if err != nil {
		return fmt.Errorf("render invoice: %w", err)
	}

	folder := fmt.Sprintf("%s/order/invoice/%d", u.opts.InvoiceFolder, user.ID)
	name := strconv.FormatInt(order.ID, 10) + ".pdf"
	file, err := u.files.Upload(ctx, folder, name, content)
	if err != nil {
		return fmt.Errorf("upload invoice: %w", err)
	}

	ref := model.InvoiceRef{FileID: file.ID, URL: file.URL}
	if err := u.orders.AttachInvoice(ctx, order.ID, ref); err != nil {
		return fmt.Errorf("attach invoice: %w", err)
	}
	order.Invoice = &ref

	err = u.mail.Send(ctx, mailer.Message{
		To:             user.Email,
		Subject:        "Order Invoice",
		Body:           "Thank you for your order. Your invoice is attached.",
		AttachmentName: name,
		Attachment:     content,
	})
	if err != nil {
		u.logger.Error("invoice mail not sent, keeping stock and cart",
			slog.Int64("order", order.ID), slog.String("error", err.Error()))
		return nil
	}

	if err := u.products.DecrementStock(ctx, order.Items); err != nil {
		u.logger.Error("stock decrement after invoice mail failed",
			slog.Int64("order", order.ID), slog.String("error", err.Error()))
		return nil
	}
	if err := u.carts.Clear(ctx, order.UserID); err != nil {
		u.logger.Error("cart clear after invoice mail failed",
			slog.Int64("order", order.ID), slog.String("error", err.Error()))
	}
	return nil
}

func (u *OrderUseCase) createCheckout(ctx context.Context, order *model.Order, items []payment.CheckoutItem) (string, error) {
	var discountID string
	if order.Coupon != nil {
		id, err := u.gateway.CreateDiscount(ctx, order.Coupon.Discount)
		if err != nil {
			return "", fmt.Errorf("register discount: %w", err)
		}
		discountID = id
	}

	url, err := u.gateway.CreateSession(ctx, payment.SessionRequest{
		ClientReference: strconv.FormatInt(order.ID, 10),
		Currency:        u.opts.Currency,
		Items:           items,
		DiscountID:      discountID,
		SuccessURL:      u.opts.SuccessURL,
		CancelURL:       u.opts.CancelURL,
	})
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return url, nil
}

// Cancel transitions the order to canceled and restores stock, refusing
// shipped and terminal orders. Orders of other users are reported missing.
func (u *OrderUseCase) Cancel(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	return u.orders.Cancel(ctx, orderID)
}

// ListByUser returns the user's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}
