package model

import "time"

// Category is a top level catalog grouping.
type Category struct {
	ID        int64
	Name      string
	Slug      string
	CreatedBy int64
	CreatedAt time.Time
}

// Subcategory is a catalog grouping owned by a category.
type Subcategory struct {
	ID         int64
	CategoryID int64
	Name       string
	Slug       string
	CreatedAt  time.Time
}

// Brand is a product manufacturer label.
type Brand struct {
	ID        int64
	Name      string
	Slug      string
	CreatedAt time.Time
}
