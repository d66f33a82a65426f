package dto

import "time"

// ProductImageDTO is one hosted product picture.
type ProductImageDTO struct {
	ID  string `json:"id"`
	URL string `json:"url" binding:"required,url"`
}

// ProductCreateRequest describes a new catalog product.
type ProductCreateRequest struct {
	Name            string            `json:"name" binding:"required"`
	Description     string            `json:"description"`
	CategoryID      int64             `json:"categoryId" binding:"required"`
	SubcategoryID   *int64            `json:"subcategoryId"`
	BrandID         *int64            `json:"brandId"`
	Price           float64           `json:"price" binding:"required,gt=0"`
	DiscountPercent float64           `json:"discountPercent" binding:"gte=0,lt=100"`
	Stock           int               `json:"stock" binding:"gte=0"`
	Images          []ProductImageDTO `json:"images" binding:"dive"`
}

// StockRequest replaces the available stock of a product.
type StockRequest struct {
	Stock *int `json:"stock" binding:"required,gte=0"`
}

// ProductResponse is the public view of a product.
type ProductResponse struct {
	ID              int64             `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	CategoryID      int64             `json:"categoryId"`
	SubcategoryID   *int64            `json:"subcategoryId,omitempty"`
	BrandID         *int64            `json:"brandId,omitempty"`
	Price           float64           `json:"price"`
	DiscountPercent float64           `json:"discountPercent"`
	FinalPrice      float64           `json:"finalPrice"`
	Stock           int               `json:"stock"`
	Images          []ProductImageDTO `json:"images,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}
