package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/gophershop/internal/domain/errors"
	"github.com/polkiloo/gophershop/internal/domain/model"
)

type couponRepository struct {
	storage *Storage
}

func (r *couponRepository) Create(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	const query = `INSERT INTO coupons (code, discount, expires_at, created_by)
                   VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	c := *coupon
	err := r.storage.pool.QueryRow(ctx, query, c.Code, c.Discount, c.ExpiresAt, c.CreatedBy).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &c, nil
}

func (r *couponRepository) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	const query = `SELECT id, code, discount, expires_at, COALESCE(created_by, 0), created_at
                   FROM coupons WHERE code=$1`
	var c model.Coupon
	err := r.storage.pool.QueryRow(ctx, query, code).Scan(&c.ID, &c.Code, &c.Discount, &c.ExpiresAt, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *couponRepository) GetValidByCode(ctx context.Context, code string, now time.Time) (*model.Coupon, error) {
	const query = `SELECT id, code, discount, expires_at, COALESCE(created_by, 0), created_at
                   FROM coupons WHERE code=$1 AND expires_at > $2`
	var c model.Coupon
	err := r.storage.pool.QueryRow(ctx, query, code, now).Scan(&c.ID, &c.Code, &c.Discount, &c.ExpiresAt, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *couponRepository) List(ctx context.Context) ([]model.Coupon, error) {
	const query = `SELECT id, code, discount, expires_at, COALESCE(created_by, 0), created_at
                   FROM coupons ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Coupon
	for rows.Next() {
		var c model.Coupon
		if err := rows.Scan(&c.ID, &c.Code, &c.Discount, &c.ExpiresAt, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
