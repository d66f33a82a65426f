package model

// CartItem is one product/quantity pair inside a cart.
type CartItem struct {
	ProductID int64
	Quantity  int
}

// Cart holds the current shopping selection of one user.
type Cart struct {
	UserID int64
	Items  []CartItem
}
