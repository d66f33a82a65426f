package postgres

import (
	"context"

	domainErrors "github.com/polkiloo/gophershop/internal/domain/errors"
	"github.com/polkiloo/gophershop/internal/domain/model"
)

type cartRepository struct {
	storage *Storage
}

// Get returns the user's cart. A user with no lines gets an empty cart, not
// an error.
func (r *cartRepository) Get(ctx context.Context, userID int64) (*model.Cart, error) {
	const query = `SELECT product_id, quantity FROM cart_items WHERE user_id=$1 ORDER BY product_id`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart := &model.Cart{UserID: userID}
	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *cartRepository) PutItem(ctx context.Context, userID, productID int64, quantity int) error {
	const query = `INSERT INTO cart_items (user_id, product_id, quantity)
                   VALUES ($1, $2, $3)
                   ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = EXCLUDED.quantity`
	_, err := r.storage.pool.Exec(ctx, query, userID, productID, quantity)
	return err
}

func (r *cartRepository) RemoveItem(ctx context.Context, userID, productID int64) error {
	const query = `DELETE FROM cart_items WHERE user_id=$1 AND product_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, userID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Clear(ctx context.Context, userID int64) error {
	const query = `DELETE FROM cart_items WHERE user_id=$1`
	_, err := r.storage.pool.Exec(ctx, query, userID)
	return err
}
