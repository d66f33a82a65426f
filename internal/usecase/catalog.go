package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/gophershop/internal/domain/errors"
	"github.com/polkiloo/gophershop/internal/domain/model"
	"github.com/polkiloo/gophershop/internal/domain/repository"
)

// CatalogUseCase manages categories, subcategories and brands.
type CatalogUseCase struct {
	categories    repository.CategoryRepository
	subcategories repository.SubcategoryRepository
	brands        repository.BrandRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(c repository.CategoryRepository, s repository.SubcategoryRepository, b repository.BrandRepository) *CatalogUseCase {
	return &CatalogUseCase{categories: c, subcategories: s, brands: b}
}

// CreateCategory adds a category named by the given user.
func (u *CatalogUseCase) CreateCategory(ctx context.Context, userID int64, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.categories.Create(ctx, &model.Category{Name: name, Slug: Slugify(name), CreatedBy: userID})
}

// GetCategory fetches a category by id.
func (u *CatalogUseCase) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	return u.categories.GetByID(ctx, id)
}

// ListCategories returns all categories sorted by name.
func (u *CatalogUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}

// UpdateCategory renames a category, refreshing its slug.
func (u *CatalogUseCase) UpdateCategory(ctx context.Context, id int64, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.categories.Update(ctx, id, name, Slugify(name))
}

// DeleteCategory removes a category and, via cascade, its subcategories.
func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return u.categories.Delete(ctx, id)
}

// CreateSubcategory adds a subcategory under an existing category.
func (u *CatalogUseCase) CreateSubcategory(ctx context.Context, categoryID int64, name string) (*model.Subcategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	if _, err := u.categories.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return u.subcategories.Create(ctx, &model.Subcategory{CategoryID: categoryID, Name: name, Slug: Slugify(name)})
}

// GetSubcategory fetches a subcategory by id.
func (u *CatalogUseCase) GetSubcategory(ctx context.Context, id int64) (*model.Subcategory, error) {
	return u.subcategories.GetByID(ctx, id)
}

// ListSubcategories returns subcategories, optionally narrowed to a category.
func (u *CatalogUseCase) ListSubcategories(ctx context.Context, categoryID *int64) ([]model.Subcategory, error) {
	if categoryID != nil {
		return u.subcategories.ListByCategory(ctx, *categoryID)
	}
	return u.subcategories.List(ctx)
}

// UpdateSubcategory renames a subcategory, refreshing its slug.
func (u *CatalogUseCase) UpdateSubcategory(ctx context.Context, id int64, name string) (*model.Subcategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.subcategories.Update(ctx, id, name, Slugify(name))
}

// DeleteSubcategory removes a subcategory.
func (u *CatalogUseCase) DeleteSubcategory(ctx context.Context, id int64) error {
	return u.subcategories.Delete(ctx, id)
}

// CreateBrand adds a brand.
func (u *CatalogUseCase) CreateBrand(ctx context.Context, name string) (*model.Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.brands.Create(ctx, &model.Brand{Name: name, Slug: Slugify(name)})
}

// GetBrand fetches a brand by id.
func (u *CatalogUseCase) GetBrand(ctx context.Context, id int64) (*model.Brand, error) {
	return u.brands.GetByID(ctx, id)
}

// ListBrands returns all brands sorted by name.
func (u *CatalogUseCase) ListBrands(ctx context.Context) ([]model.Brand, error) {
	return u.brands.List(ctx)
}

// UpdateBrand renames a brand, refreshing its slug.
func (u *CatalogUseCase) UpdateBrand(ctx context.Context, id int64, name string) (*model.Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.brands.Update(ctx, id, name, Slugify(name))
}

// DeleteBrand removes a brand.
func (u *CatalogUseCase) DeleteBrand(ctx context.Context, id int64) error {
	return u.brands.Delete(ctx, id)
}
