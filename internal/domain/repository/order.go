package repository

import (
	"context"

	"github.com/polkiloo/gophershop/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create persists the order together with its frozen item snapshot.
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	AttachInvoice(ctx context.Context, orderID int64, invoice model.InvoiceRef) error
	// Cancel transitions a non-terminal, non-shipped order to canceled and
	// restores stock for every line in the same transaction.
	Cancel(ctx context.Context, orderID int64) (*model.Order, error)
}
