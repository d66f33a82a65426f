package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/gophershop/internal/domain/errors"
	"github.com/polkiloo/gophershop/internal/domain/model"
)

type categoryRepository struct {
	storage *Storage
}

type subcategoryRepository struct {
	storage *Storage
}

type brandRepository struct {
	storage *Storage
}

func translateCatalogError(err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return domainErrors.ErrNotFound
	case errors.As(err, &pgErr) && pgErr.Code == "23505":
		return domainErrors.ErrAlreadyExists
	case errors.As(err, &pgErr) && pgErr.Code == "23503":
		return domainErrors.ErrNotFound
	}
	return err
}

// --- CategoryRepository implementation ---

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	const query = `INSERT INTO categories (name, slug, created_by) VALUES ($1, $2, $3) RETURNING id, created_at`
	c := *category
	err := r.storage.pool.QueryRow(ctx, query, c.Name, c.Slug, c.CreatedBy).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, translateCatalogError(err)
	}
	return &c, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	const query = `SELECT id, name, slug, COALESCE(created_by, 0), created_at FROM categories WHERE id=$1`
	var c model.Category
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		return nil, translateCatalogError(err)
	}
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT id, name, slug, COALESCE(created_by, 0), created_at FROM categories ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *categoryRepository) Update(ctx context.Context, id int64, name, slug string) (*model.Category, error) {
	const query = `UPDATE categories SET name=$1, slug=$2 WHERE id=$3
                   RETURNING id, name, slug, COALESCE(created_by, 0), created_at`
	var c model.Category
	err := r.storage.pool.QueryRow(ctx, query, name, slug, id).Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		return nil, translateCatalogError(err)
	}
	return &c, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM categories WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- SubcategoryRepository implementation ---

func (r *subcategoryRepository) Create(ctx context.Context, sub *model.Subcategory) (*model.Subcategory, error) {
	const query = `INSERT INTO subcategories (category_id, name, slug) VALUES ($1, $2, $3) RETURNING id, created_at`
	s := *sub
	err := r.storage.pool.QueryRow(ctx, query, s.CategoryID, s.Name, s.Slug).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return nil, translateCatalogError(err)
	}
	return &s, nil
}

func (r *subcategoryRepository) GetByID(ctx context.Context, id int64) (*model.Subcategory, error) {
	const query = `SELECT id, category_id, name, slug, created_at FROM subcategories WHERE id=$1`
	var s model.Subcategory
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.CategoryID, &s.Name, &s.Slug, &s.CreatedAt)
	if err != nil {
		return nil, translateCatalogError(err)
	}
	return &s, nil
}

func (r *subcategoryRepository) scanList(rows pgx.Rows) ([]model.Subcategory, error) {
	defer rows.Close()

	var result []model.Subcategory
	for rows.Next() {
		var s model.Subcategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Slug, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *subcategoryRepository) ListByCategory(ctx context.Context, categoryID int64) ([]model.Subcategory, error) {
	const query = `SELECT id, category_id, name, slug, created_at FROM subcategories WHERE category_id=$1 ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	return r.scanList(rows)
}

func (r *subcategoryRepository) List(ctx context.Context) ([]model.Subcategory, error) {
	const query = `SELECT id, category_id, name, slug, created_at FROM subcategories ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.scanList(rows)
}

func (r *subcategoryRepository) Update(ctx context.Context, id int64, name, slug string) (*model.Subcategory, error) {
	const query = `UPDATE subcategories SET name=$1, slug=$2 WHERE id=$3
                   RETURNING id, category_id, name, slug, created_at`
	var s model.Subcategory
	err := r.storage.pool.QueryRow(ctx, query, name, slug, id).Scan(&s.ID, &s.CategoryID, &s.Name, &s.Slug, &s.CreatedAt)
	if err != nil {
		return nil, translateCatalogError(err)
	}
	return &s, nil
}

func (r *subcategoryRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM subcategories WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- BrandRepository implementation ---

func (r *brandRepository) Create(ctx context.Context, brand *model.Brand) (*model.Brand, error) {
	const query = `INSERT INTO brands (name, slug) VALUES ($1, $2) RETURNING id, created_at`
	b := *brand
	err := r.storage.pool.QueryRow(ctx, query, b.Name, b.Slug).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return nil, translateCatalogError(err)
	}
	return &b, nil
}

func (r *brandRepository) GetByID(ctx context.Context, id int64) (*model.Brand, error) {
	const query = `SELECT id, name, slug, created_at FROM brands WHERE id=$1`
	var b model.Brand
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.Slug, &b.CreatedAt)
	if err != nil {
		return nil, translateCatalogError(err)
	}
	return &b, nil
}

func (r *brandRepository) List(ctx context.Context) ([]model.Brand, error) {
	const query = `SELECT id, name, slug, created_at FROM brands ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Brand
	for rows.Next() {
		var b model.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *brandRepository) Update(ctx context.Context, id int64, name, slug string) (*model.Brand, error) {
	const query = `UPDATE brands SET name=$1, slug=$2 WHERE id=$3 RETURNING id, name, slug, created_at`
	var b model.Brand
	err := r.storage.pool.QueryRow(ctx, query, name, slug, id).Scan(&b.ID, &b.Name, &b.Slug, &b.CreatedAt)
	if err != nil {
		return nil, translateCatalogError(err)
	}
	return &b, nil
}

func (r *brandRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM brands WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
