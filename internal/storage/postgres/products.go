package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/gophershop/internal/domain/errors"
	"github.com/polkiloo/gophershop/internal/domain/model"
	"github.com/polkiloo/gophershop/internal/domain/repository"
)

type productRepository struct {
	storage *Storage
}

const productColumns = `id, name, description, category_id, subcategory_id, brand_id,
                        price, discount_percent, stock, images, created_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var (
		p      model.Product
		images []byte
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.SubcategoryID, &p.BrandID,
		&p.Price, &p.DiscountPercent, &p.Stock, &images, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return nil, fmt.Errorf("decode product images: %w", err)
		}
	}
	p.FinalPrice = finalPrice(p.Price, p.DiscountPercent)
	return &p, nil
}

func finalPrice(price, discountPercent float64) float64 {
	return price * (1 - discountPercent/100)
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (name, description, category_id, subcategory_id, brand_id,
                                         price, discount_percent, stock, images)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                   RETURNING id, created_at`
	images, err := json.Marshal(product.Images)
	if err != nil {
		return nil, fmt.Errorf("encode product images: %w", err)
	}
	if product.Images == nil {
		images = []byte(`[]`)
	}

	p := *product
	err = r.storage.pool.QueryRow(ctx, query, p.Name, p.Description, p.CategoryID, p.SubcategoryID,
		p.BrandID, p.Price, p.DiscountPercent, p.Stock, images).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, translateCatalogError(err)
	}
	p.FinalPrice = finalPrice(p.Price, p.DiscountPercent)
	return &p, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id=$1`, productColumns)
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products`, productColumns)
	var (
		args  []any
		where string
	)
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		where = fmt.Sprintf(" WHERE category_id=$%d", len(args))
	}
	if filter.BrandID != nil {
		args = append(args, *filter.BrandID)
		clause := fmt.Sprintf("brand_id=$%d", len(args))
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}
	query += where + " ORDER BY created_at DESC"

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) SetStock(ctx context.Context, id int64, stock int) error {
	const query = `UPDATE products SET stock=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, stock, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// DecrementStock subtracts quantities with a conditional update so stock can
// never go negative, even under concurrent checkouts.
func (r *productRepository) DecrementStock(ctx context.Context, items []model.OrderItem) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, item := range items {
			if err := decrementStockTx(ctx, tx, item); err != nil {
				return err
			}
		}
		return nil
	})
}

func decrementStockTx(ctx context.Context, tx pgx.Tx, item model.OrderItem) error {
	const query = `UPDATE products SET stock = stock - $1 WHERE id=$2 AND stock >= $1`
	tag, err := tx.Exec(ctx, query, item.Quantity, item.ProductID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		const stockQuery = `SELECT name, stock FROM products WHERE id=$1`
		var (
			name  string
			stock int
		)
		if err := tx.QueryRow(ctx, stockQuery, item.ProductID).Scan(&name, &stock); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		return &domainErrors.OutOfStockError{ProductName: name, Available: stock}
	}
	return nil
}

func (r *productRepository) RestoreStock(ctx context.Context, items []model.OrderItem) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return restoreStockTx(ctx, tx, items)
	})
}

func restoreStockTx(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	const query = `UPDATE products SET stock = stock + $1 WHERE id=$2`
	for _, item := range items {
		if _, err := tx.Exec(ctx, query, item.Quantity, item.ProductID); err != nil {
			return err
		}
	}
	return nil
}
