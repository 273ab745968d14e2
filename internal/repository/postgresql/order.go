package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/storage"
)

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) storage.OrderRepository {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) CreateTx(ctx context.Context, tx db.Tx, order *repository.Order) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO orders (
            customer_name, invoice_number, content, import_date,
            original_quantity, current_quantity, storage_location, completed,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, order.CustomerName, order.InvoiceNumber, order.Content, order.ImportDate,
		order.OriginalQuantity, order.CurrentQuantity, order.StorageLocation, order.Completed,
		order.CreatedAt, order.UpdatedAt)
	return err
}

func (r *OrderRepo) GetByInvoice(ctx context.Context, customerName, invoiceNumber string) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order,
		"SELECT * FROM orders WHERE customer_name = $1 AND invoice_number = $2",
		customerName, invoiceNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) GetByCustomer(ctx context.Context, customerName string, completed bool) ([]*repository.Order, error) {
	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, `
        SELECT * FROM orders
        WHERE customer_name = $1 AND completed = $2
        ORDER BY created_at ASC
    `, customerName, completed)
	return orders, err
}

func (r *OrderRepo) UpdateTx(ctx context.Context, tx db.Tx, order *repository.Order) error {
	_, err := tx.Exec(ctx, `
        UPDATE orders
        SET
            content = $1,
            current_quantity = $2,
            storage_location = $3,
            completed = $4,
            updated_at = $5
        WHERE customer_name = $6 AND invoice_number = $7
    `, order.Content, order.CurrentQuantity, order.StorageLocation, order.Completed,
		order.UpdatedAt, order.CustomerName, order.InvoiceNumber)
	return err
}

func (r *OrderRepo) DeleteTx(ctx context.Context, tx db.Tx, customerName, invoiceNumber string) error {
	_, err := tx.Exec(ctx,
		"DELETE FROM orders WHERE customer_name = $1 AND invoice_number = $2",
		customerName, invoiceNumber)
	return err
}
