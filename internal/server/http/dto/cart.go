package dto

// CartItemRequest sets the quantity for one product line.
type CartItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

// CartItemResponse is one line of the cart view.
type CartItemResponse struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CartResponse is the public view of the user's cart.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
}
