package model

import "time"

// Product is a sellable catalog item.
type Product struct {
	ID              int64
	Name            string
	Description     string
	CategoryID      int64
	SubcategoryID   *int64
	BrandID         *int64
	Price           float64
	DiscountPercent float64
	FinalPrice      float64
	Stock           int
	Images          []ProductImage
	CreatedAt       time.Time
}

// ProductImage references an externally hosted product picture.
type ProductImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// InStock reports whether the requested quantity can be fulfilled.
func (p *Product) InStock(quantity int) bool {
	return quantity > 0 && quantity <= p.Stock
}
