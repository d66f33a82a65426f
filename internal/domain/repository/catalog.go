package repository

import (
	"context"

	"github.com/polkiloo/gophershop/internal/domain/model"
)

// CategoryRepository describes persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id int64, name, slug string) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
}

// SubcategoryRepository describes persistence operations for subcategories.
type SubcategoryRepository interface {
	Create(ctx context.Context, sub *model.Subcategory) (*model.Subcategory, error)
	GetByID(ctx context.Context, id int64) (*model.Subcategory, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]model.Subcategory, error)
	List(ctx context.Context) ([]model.Subcategory, error)
	Update(ctx context.Context, id int64, name, slug string) (*model.Subcategory, error)
	Delete(ctx context.Context, id int64) error
}

// BrandRepository describes persistence operations for brands.
type BrandRepository interface {
	Create(ctx context.Context, brand *model.Brand) (*model.Brand, error)
	GetByID(ctx context.Context, id int64) (*model.Brand, error)
	List(ctx context.Context) ([]model.Brand, error)
	Update(ctx context.Context, id int64, name, slug string) (*model.Brand, error)
	Delete(ctx context.Context, id int64) error
}
