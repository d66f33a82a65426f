package dto

import "time"

// NameRequest is the create/rename payload shared by catalog entities.
type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

// SubcategoryCreateRequest creates a subcategory under a category.
type SubcategoryCreateRequest struct {
	Name       string `json:"name" binding:"required"`
	CategoryID int64  `json:"categoryId" binding:"required"`
}

// CategoryResponse is the public view of a category.
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubcategoryResponse is the public view of a subcategory.
type SubcategoryResponse struct {
	ID         int64     `json:"id"`
	CategoryID int64     `json:"categoryId"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BrandResponse is the public view of a brand.
type BrandResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}
