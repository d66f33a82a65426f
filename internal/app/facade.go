package app

import (
	"context"
	"time"

	"github.com/polkiloo/gophershop/internal/domain/model"
	"github.com/polkiloo/gophershop/internal/domain/repository"
	"github.com/polkiloo/gophershop/internal/usecase"
)

// ShopFacade aggregates the store use cases behind the HTTP surface.
type ShopFacade struct {
	auth    *usecase.AuthUseCase
	catalog *usecase.CatalogUseCase
	product *usecase.ProductUseCase
	coupon  *usecase.CouponUseCase
	cart    *usecase.CartUseCase
	order   *usecase.OrderUseCase
}

// NewShopFacade constructs ShopFacade.
func NewShopFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	product *usecase.ProductUseCase,
	coupon *usecase.CouponUseCase,
	cart *usecase.CartUseCase,
	order *usecase.OrderUseCase,
) *ShopFacade {
	return &ShopFacade{
		auth:    auth,
		catalog: catalog,
		product: product,
		coupon:  coupon,
		cart:    cart,
		order:   order,
	}
}

func (f *ShopFacade) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *ShopFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *ShopFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *ShopFacade) CreateCategory(ctx context.Context, userID int64, name string) (*model.Category, error) {
	return f.catalog.CreateCategory(ctx, userID, name)
}

func (f *ShopFacade) Category(ctx context.Context, id int64) (*model.Category, error) {
	return f.catalog.GetCategory(ctx, id)
}

func (f *ShopFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.catalog.ListCategories(ctx)
}

func (f *ShopFacade) RenameCategory(ctx context.Context, id int64, name string) (*model.Category, error) {
	return f.catalog.UpdateCategory(ctx, id, name)
}

func (f *ShopFacade) DeleteCategory(ctx context.Context, id int64) error {
	return f.catalog.DeleteCategory(ctx, id)
}

func (f *ShopFacade) CreateSubcategory(ctx context.Context, categoryID int64, name string) (*model.Subcategory, error) {
	return f.catalog.CreateSubcategory(ctx, categoryID, name)
}

func (f *ShopFacade) Subcategory(ctx context.Context, id int64) (*model.Subcategory, error) {
	return f.catalog.GetSubcategory(ctx, id)
}

func (f *ShopFacade) Subcategories(ctx context.Context, categoryID *int64) ([]model.Subcategory, error) {
	return f.catalog.ListSubcategories(ctx, categoryID)
}

func (f *ShopFacade) RenameSubcategory(ctx context.Context, id int64, name string) (*model.Subcategory, error) {
	return f.catalog.UpdateSubcategory(ctx, id, name)
}

func (f *ShopFacade) DeleteSubcategory(ctx context.Context, id int64) error {
	return f.catalog.DeleteSubcategory(ctx, id)
}

func (f *ShopFacade) CreateBrand(ctx context.Context, name string) (*model.Brand, error) {
	return f.catalog.CreateBrand(ctx, name)
}

func (f *ShopFacade) Brand(ctx context.Context, id int64) (*model.Brand, error) {
	return f.catalog.GetBrand(ctx, id)
}

func (f *ShopFacade) Brands(ctx context.Context) ([]model.Brand, error) {
	return f.catalog.ListBrands(ctx)
}

func (f *ShopFacade) RenameBrand(ctx context.Context, id int64, name string) (*model.Brand, error) {
	return f.catalog.UpdateBrand(ctx, id, name)
}

func (f *ShopFacade) DeleteBrand(ctx context.Context, id int64) error {
	return f.catalog.DeleteBrand(ctx, id)
}

func (f *ShopFacade) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.product.Create(ctx, product)
}

func (f *ShopFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.product.Get(ctx, id)
}

func (f *ShopFacade) Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	return f.product.List(ctx, filter)
}

func (f *ShopFacade) SetProductStock(ctx context.Context, id int64, stock int) error {
	return f.product.SetStock(ctx, id, stock)
}

func (f *ShopFacade) CreateCoupon(ctx context.Context, userID int64, code string, discount float64, expiresAt time.Time) (*model.Coupon, error) {
	return f.coupon.Create(ctx, userID, code, discount, expiresAt)
}

func (f *ShopFacade) CouponByCode(ctx context.Context, code string) (*model.Coupon, error) {
	return f.coupon.GetByCode(ctx, code)
}

func (f *ShopFacade) Coupons(ctx context.Context) ([]model.Coupon, error) {
	return f.coupon.List(ctx)
}

func (f *ShopFacade) Cart(ctx context.Context, userID int64) (*model.Cart, error) {
	return f.cart.Get(ctx, userID)
}

func (f *ShopFacade) PutCartItem(ctx context.Context, userID, productID int64, quantity int) error {
	return f.cart.PutItem(ctx, userID, productID, quantity)
}

func (f *ShopFacade) RemoveCartItem(ctx context.Context, userID, productID int64) error {
	return f.cart.RemoveItem(ctx, userID, productID)
}

func (f *ShopFacade) ClearCart(ctx context.Context, userID int64) error {
	return f.cart.Clear(ctx, userID)
}

func (f *ShopFacade) PlaceOrder(ctx context.Context, userID int64, address, phone string, payment model.PaymentMethod, couponCode string) (*model.Order, string, error) {
	result, err := f.order.Place(ctx, userID, usecase.PlaceOrderInput{
		Address:    address,
		Phone:      phone,
		Payment:    payment,
		CouponCode: couponCode,
	})
	if err != nil {
		return nil, "", err
	}
	return result.Order, result.CheckoutURL, nil
}

func (f *ShopFacade) CancelOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	return f.order.Cancel(ctx, userID, orderID)
}

func (f *ShopFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.order.ListByUser(ctx, userID)
}
