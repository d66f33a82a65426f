package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Categories() CategoryRepository
	Subcategories() SubcategoryRepository
	Brands() BrandRepository
	Products() ProductRepository
	Coupons() CouponRepository
	Carts() CartRepository
	Orders() OrderRepository
}
