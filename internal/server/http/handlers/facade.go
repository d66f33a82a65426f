package handlers

import (
	"context"
	"time"

	"github.com/polkiloo/gophershop/internal/domain/model"
	"github.com/polkiloo/gophershop/internal/domain/repository"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
}

// CatalogFacade exposes category, subcategory and brand management.
type CatalogFacade interface {
	CreateCategory(ctx context.Context, userID int64, name string) (*model.Category, error)
	Category(ctx context.Context, id int64) (*model.Category, error)
	Categories(ctx context.Context) ([]model.Category, error)
	RenameCategory(ctx context.Context, id int64, name string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateSubcategory(ctx context.Context, categoryID int64, name string) (*model.Subcategory, error)
	Subcategory(ctx context.Context, id int64) (*model.Subcategory, error)
	Subcategories(ctx context.Context, categoryID *int64) ([]model.Subcategory, error)
	RenameSubcategory(ctx context.Context, id int64, name string) (*model.Subcategory, error)
	DeleteSubcategory(ctx context.Context, id int64) error

	CreateBrand(ctx context.Context, name string) (*model.Brand, error)
	Brand(ctx context.Context, id int64) (*model.Brand, error)
	Brands(ctx context.Context) ([]model.Brand, error)
	RenameBrand(ctx context.Context, id int64, name string) (*model.Brand, error)
	DeleteBrand(ctx context.Context, id int64) error
}

// ProductFacade exposes product catalog operations.
type ProductFacade interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error)
	SetProductStock(ctx context.Context, id int64, stock int) error
}

// CouponFacade exposes coupon operations.
type CouponFacade interface {
	CreateCoupon(ctx context.Context, userID int64, code string, discount float64, expiresAt time.Time) (*model.Coupon, error)
	CouponByCode(ctx context.Context, code string) (*model.Coupon, error)
	Coupons(ctx context.Context) ([]model.Coupon, error)
}

// CartFacade exposes shopping cart operations.
type CartFacade interface {
	Cart(ctx context.Context, userID int64) (*model.Cart, error)
	PutCartItem(ctx context.Context, userID, productID int64, quantity int) error
	RemoveCartItem(ctx context.Context, userID, productID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

// OrderFacade exposes checkout and order management. PlaceOrder returns the
// created order plus a hosted checkout URL for card payments.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID int64, address, phone string, payment model.PaymentMethod, couponCode string) (*model.Order, string, error)
	CancelOrder(ctx context.Context, userID, orderID int64) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	CatalogFacade
	ProductFacade
	CouponFacade
	CartFacade
	OrderFacade
}
