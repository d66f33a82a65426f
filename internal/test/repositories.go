package test

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/gophershop/internal/domain/errors"
	"github.com/polkiloo/gophershop/internal/domain/model"
	"github.com/polkiloo/gophershop/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, name, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, Name: name, PasswordHash: passwordHash}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub keeps products in-memory and records stock mutations.
type ProductRepositoryStub struct {
	Products map[int64]*model.Product
	Err      error

	DecrementCalls [][]model.OrderItem
	RestoreCalls   [][]model.OrderItem
	DecrementErr   error
}

// NewProductRepositoryStub constructs stub repository with initialized map.
func NewProductRepositoryStub(products ...*model.Product) *ProductRepositoryStub {
	s := &ProductRepositoryStub{Products: make(map[int64]*model.Product)}
	for _, p := range products {
		s.Products[p.ID] = p
	}
	return s
}

// Create stores product under its preset id.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if product.ID == 0 {
		product.ID = int64(len(s.Products) + 1)
	}
	s.Products[product.ID] = product
	return product, nil
}

// GetByID fetches product or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored products.
func (s *ProductRepositoryStub) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.Products {
		if filter.CategoryID != nil && p.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.BrandID != nil && (p.BrandID == nil || *p.BrandID != *filter.BrandID) {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

// SetStock replaces stock for product.
func (s *ProductRepositoryStub) SetStock(ctx context.Context, id int64, stock int) error {
	if s.Err != nil {
		return s.Err
	}
	p, ok := s.Products[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	p.Stock = stock
	return nil
}

// DecrementStock applies the conditional decrement to stored products.
func (s *ProductRepositoryStub) DecrementStock(ctx context.Context, items []model.OrderItem) error {
	s.DecrementCalls = append(s.DecrementCalls, items)
	if s.DecrementErr != nil {
		return s.DecrementErr
	}
	for _, item := range items {
		p, ok := s.Products[item.ProductID]
		if !ok {
			return domainErrors.ErrNotFound
		}
		if p.Stock < item.Quantity {
			return &domainErrors.OutOfStockError{ProductName: p.Name, Available: p.Stock}
		}
	}
	for _, item := range items {
		s.Products[item.ProductID].Stock -= item.Quantity
	}
	return nil
}

// RestoreStock adds quantities back to stored products.
func (s *ProductRepositoryStub) RestoreStock(ctx context.Context, items []model.OrderItem) error {
	s.RestoreCalls = append(s.RestoreCalls, items)
	for _, item := range items {
		if p, ok := s.Products[item.ProductID]; ok {
			p.Stock += item.Quantity
		}
	}
	return nil
}

// CartRepositoryStub keeps one cart per user in-memory.
type CartRepositoryStub struct {
	Carts      map[int64][]model.CartItem
	Err        error
	ClearCalls []int64
}

// NewCartRepositoryStub constructs stub repository with initialized map.
func NewCartRepositoryStub() *CartRepositoryStub {
	return &CartRepositoryStub{Carts: make(map[int64][]model.CartItem)}
}

// Get returns the user's cart, empty when absent.
func (s *CartRepositoryStub) Get(ctx context.Context, userID int64) (*model.Cart, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.Cart{UserID: userID, Items: s.Carts[userID]}, nil
}

// PutItem sets a line quantity.
func (s *CartRepositoryStub) PutItem(ctx context.Context, userID, productID int64, quantity int) error {
	if s.Err != nil {
		return s.Err
	}
	items := s.Carts[userID]
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			return nil
		}
	}
	s.Carts[userID] = append(items, model.CartItem{ProductID: productID, Quantity: quantity})
	return nil
}

// RemoveItem drops a line.
func (s *CartRepositoryStub) RemoveItem(ctx context.Context, userID, productID int64) error {
	if s.Err != nil {
		return s.Err
	}
	items := s.Carts[userID]
	for i := range items {
		if items[i].ProductID == productID {
			s.Carts[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Clear empties the cart and records the call.
func (s *CartRepositoryStub) Clear(ctx context.Context, userID int64) error {
	s.ClearCalls = append(s.ClearCalls, userID)
	if s.Err != nil {
		return s.Err
	}
	delete(s.Carts, userID)
	return nil
}

// CouponRepositoryStub keeps coupons in-memory.
type CouponRepositoryStub struct {
	Coupons map[string]*model.Coupon
	Err     error
}

// NewCouponRepositoryStub constructs stub repository with initialized map.
func NewCouponRepositoryStub(coupons ...*model.Coupon) *CouponRepositoryStub {
	s := &CouponRepositoryStub{Coupons: make(map[string]*model.Coupon)}
	for _, c := range coupons {
		s.Coupons[c.Code] = c
	}
	return s
}

// Create stores coupon unless the code already exists.
func (s *CouponRepositoryStub) Create(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Coupons[coupon.Code]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	coupon.ID = int64(len(s.Coupons) + 1)
	s.Coupons[coupon.Code] = coupon
	return coupon, nil
}

// GetByCode fetches a coupon regardless of expiry.
func (s *CouponRepositoryStub) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if c, ok := s.Coupons[code]; ok {
		return c, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetValidByCode fetches a coupon only when unexpired.
func (s *CouponRepositoryStub) GetValidByCode(ctx context.Context, code string, now time.Time) (*model.Coupon, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	c, ok := s.Coupons[code]
	if !ok || !c.ExpiresAt.After(now) {
		return nil, domainErrors.ErrNotFound
	}
	return c, nil
}

// List returns all stored coupons.
func (s *CouponRepositoryStub) List(ctx context.Context) ([]model.Coupon, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Coupon
	for _, c := range s.Coupons {
		result = append(result, *c)
	}
	return result, nil
}

// OrderRepositoryStub records orders and supports cancellation transitions.
type OrderRepositoryStub struct {
	Orders map[int64]*model.Order
	Next   int64

	CreateErr  error
	AttachErr  error
	CancelErr  error
	Restorer   *ProductRepositoryStub
	AttachRefs map[int64]model.InvoiceRef
}

// NewOrderRepositoryStub constructs stub repository with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Orders:     make(map[int64]*model.Order),
		Next:       1,
		AttachRefs: make(map[int64]model.InvoiceRef),
	}
}

// Create assigns an id and stores the order.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	stored := *order
	stored.ID = s.Next
	if stored.Status == "" {
		stored.Status = model.OrderStatusPending
	}
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.Next++
	s.Orders[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches order or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if o, ok := s.Orders[id]; ok {
		return o, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns orders belonging to user.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	var result []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			result = append(result, *o)
		}
	}
	return result, nil
}

// AttachInvoice records the invoice reference.
func (s *OrderRepositoryStub) AttachInvoice(ctx context.Context, orderID int64, invoice model.InvoiceRef) error {
	if s.AttachErr != nil {
		return s.AttachErr
	}
	o, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	o.Invoice = &invoice
	s.AttachRefs[orderID] = invoice
	return nil
}

// Cancel mimics the transactional cancel: terminal and shipped orders are
// refused, otherwise status flips and stock is restored once.
func (s *OrderRepositoryStub) Cancel(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.CancelErr != nil {
		return nil, s.CancelErr
	}
	o, ok := s.Orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if o.Status == model.OrderStatusShipped || o.Status.Terminal() {
		return nil, domainErrors.ErrOrderNotCancelable
	}
	o.Status = model.OrderStatusCanceled
	o.UpdatedAt = time.Now()
	if s.Restorer != nil {
		_ = s.Restorer.RestoreStock(ctx, o.Items)
	}
	return o, nil
}
