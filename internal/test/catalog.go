package test

import (
	"context"

	domainErrors "github.com/polkiloo/gophershop/internal/domain/errors"
	"github.com/polkiloo/gophershop/internal/domain/model"
)

// CategoryRepositoryStub keeps categories in-memory.
type CategoryRepositoryStub struct {
	Categories map[int64]*model.Category
	Next       int64
	Err        error
}

// NewCategoryRepositoryStub constructs stub repository with initialized map.
func NewCategoryRepositoryStub() *CategoryRepositoryStub {
	return &CategoryRepositoryStub{Categories: make(map[int64]*model.Category), Next: 1}
}

func (s *CategoryRepositoryStub) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Categories {
		if c.Slug == category.Slug {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	stored := *category
	stored.ID = s.Next
	s.Next++
	s.Categories[stored.ID] = &stored
	return &stored, nil
}

func (s *CategoryRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if c, ok := s.Categories[id]; ok {
		return c, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Category
	for _, c := range s.Categories {
		result = append(result, *c)
	}
	return result, nil
}

func (s *CategoryRepositoryStub) Update(ctx context.Context, id int64, name, slug string) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	c, ok := s.Categories[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	c.Name = name
	c.Slug = slug
	return c, nil
}

func (s *CategoryRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Categories[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Categories, id)
	return nil
}

// SubcategoryRepositoryStub keeps subcategories in-memory.
type SubcategoryRepositoryStub struct {
	Subcategories map[int64]*model.Subcategory
	Next          int64
	Err           error
}

// NewSubcategoryRepositoryStub constructs stub repository with initialized map.
func NewSubcategoryRepositoryStub() *SubcategoryRepositoryStub {
	return &SubcategoryRepositoryStub{Subcategories: make(map[int64]*model.Subcategory), Next: 1}
}

func (s *SubcategoryRepositoryStub) Create(ctx context.Context, sub *model.Subcategory) (*model.Subcategory, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *sub
	stored.ID = s.Next
	s.Next++
	s.Subcategories[stored.ID] = &stored
	return &stored, nil
}

func (s *SubcategoryRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Subcategory, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if sub, ok := s.Subcategories[id]; ok {
		return sub, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *SubcategoryRepositoryStub) ListByCategory(ctx context.Context, categoryID int64) ([]model.Subcategory, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Subcategory
	for _, sub := range s.Subcategories {
		if sub.CategoryID == categoryID {
			result = append(result, *sub)
		}
	}
	return result, nil
}

func (s *SubcategoryRepositoryStub) List(ctx context.Context) ([]model.Subcategory, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Subcategory
	for _, sub := range s.Subcategories {
		result = append(result, *sub)
	}
	return result, nil
}

func (s *SubcategoryRepositoryStub) Update(ctx context.Context, id int64, name, slug string) (*model.Subcategory, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	sub, ok := s.Subcategories[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	sub.Name = name
	sub.Slug = slug
	return sub, nil
}

func (s *SubcategoryRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Subcategories[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Subcategories, id)
	return nil
}

// BrandRepositoryStub keeps brands in-memory.
type BrandRepositoryStub struct {
	Brands map[int64]*model.Brand
	Next   int64
	Err    error
}

// NewBrandRepositoryStub constructs stub repository with initialized map.
func NewBrandRepositoryStub() *BrandRepositoryStub {
	return &BrandRepositoryStub{Brands: make(map[int64]*model.Brand), Next: 1}
}

func (s *BrandRepositoryStub) Create(ctx context.Context, brand *model.Brand) (*model.Brand, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, b := range s.Brands {
		if b.Slug == brand.Slug {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	stored := *brand
	stored.ID = s.Next
	s.Next++
	s.Brands[stored.ID] = &stored
	return &stored, nil
}

func (s *BrandRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Brand, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if b, ok := s.Brands[id]; ok {
		return b, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *BrandRepositoryStub) List(ctx context.Context) ([]model.Brand, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Brand
	for _, b := range s.Brands {
		result = append(result, *b)
	}
	return result, nil
}

func (s *BrandRepositoryStub) Update(ctx context.Context, id int64, name, slug string) (*model.Brand, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	b, ok := s.Brands[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	b.Name = name
	b.Slug = slug
	return b, nil
}

func (s *BrandRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Brands[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Brands, id)
	return nil
}
