package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/gophershop/internal/domain/errors"
	"github.com/polkiloo/gophershop/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

// Create persists the order and its frozen line snapshot in one transaction.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	created := *order
	if created.Status == "" {
		created.Status = model.OrderStatusPending
	}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (user_id, address, phone, payment, status,
                                                 coupon_code, coupon_discount, price)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                             RETURNING id, created_at, updated_at`
		var (
			couponCode     *string
			couponDiscount *float64
		)
		if created.Coupon != nil {
			couponCode = &created.Coupon.Code
			couponDiscount = &created.Coupon.Discount
		}

		err := tx.QueryRow(ctx, insertOrder, created.UserID, created.Address, created.Phone,
			created.Payment, created.Status, couponCode, couponDiscount, created.Price).
			Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, name, quantity, item_price, total_price)
                            VALUES ($1, $2, $3, $4, $5, $6)`
		for _, item := range created.Items {
			if _, err := tx.Exec(ctx, insertItem, created.ID, item.ProductID, item.Name,
				item.Quantity, item.ItemPrice, item.TotalPrice); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

const orderColumns = `id, user_id, address, phone, payment, status, coupon_code,
                      coupon_discount, price, invoice_file_id, invoice_url, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o              model.Order
		couponCode     *string
		couponDiscount *float64
		invoiceFileID  *string
		invoiceURL     *string
	)
	err := row.Scan(&o.ID, &o.UserID, &o.Address, &o.Phone, &o.Payment, &o.Status,
		&couponCode, &couponDiscount, &o.Price, &invoiceFileID, &invoiceURL, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if couponCode != nil {
		snapshot := model.CouponSnapshot{Code: *couponCode}
		if couponDiscount != nil {
			snapshot.Discount = *couponDiscount
		}
		o.Coupon = &snapshot
	}
	if invoiceFileID != nil && invoiceURL != nil {
		o.Invoice = &model.InvoiceRef{FileID: *invoiceFileID, URL: *invoiceURL}
	}
	return &o, nil
}

func loadOrderItems(ctx context.Context, q interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}, orderID int64) ([]model.OrderItem, error) {
	const query = `SELECT product_id, name, quantity, item_price, total_price
                   FROM order_items WHERE order_id=$1`
	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Quantity, &item.ItemPrice, &item.TotalPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	items, err := loadOrderItems(ctx, r.storage.pool, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		items, err := loadOrderItems(ctx, r.storage.pool, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}
	return result, nil
}

func (r *orderRepository) AttachInvoice(ctx context.Context, orderID int64, invoice model.InvoiceRef) error {
	const query = `UPDATE orders SET invoice_file_id=$1, invoice_url=$2, updated_at=NOW() WHERE id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, invoice.FileID, invoice.URL, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// Cancel transitions the order to canceled and restores stock for every line
// inside one transaction, so the restore can only ever happen once.
func (r *orderRepository) Cancel(ctx context.Context, orderID int64) (*model.Order, error) {
	var canceled *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockQuery = `SELECT status FROM orders WHERE id=$1 FOR UPDATE`
		var status model.OrderStatus
		if err := tx.QueryRow(ctx, lockQuery, orderID).Scan(&status); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if status == model.OrderStatusShipped || status.Terminal() {
			return domainErrors.ErrOrderNotCancelable
		}

		updateQuery := `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2
                        RETURNING ` + orderColumns
		order, err := scanOrder(tx.QueryRow(ctx, updateQuery, model.OrderStatusCanceled, orderID))
		if err != nil {
			return err
		}

		items, err := loadOrderItems(ctx, tx, orderID)
		if err != nil {
			return err
		}
		order.Items = items

		if err := restoreStockTx(ctx, tx, items); err != nil {
			return err
		}

		canceled = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return canceled, nil
}
