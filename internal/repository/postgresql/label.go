package postgresql

import (
	"context"

	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/storage"
)

type LabelRepo struct {
	db db.DB
}

func NewLabelRepo(db db.DB) storage.LabelRepository {
	return &LabelRepo{db: db}
}

func (r *LabelRepo) CreateExportTx(ctx context.Context, tx db.Tx, label *repository.ExportLabel) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO export_labels (
            customer_name, order_invoice, quantity, invoice_number, export_date
        ) VALUES ($1, $2, $3, $4, $5)
    `, label.CustomerName, label.OrderInvoice, label.Quantity, label.InvoiceNumber, label.ExportDate)
	return err
}

func (r *LabelRepo) CreateMonthlyChargeTx(ctx context.Context, tx db.Tx, label *repository.MonthlyChargeLabel) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO monthly_charge_labels (
            customer_name, order_invoice, quantity, invoice_number, start_date, end_date
        ) VALUES ($1, $2, $3, $4, $5, $6)
    `, label.CustomerName, label.OrderInvoice, label.Quantity, label.InvoiceNumber, label.StartDate, label.EndDate)
	return err
}

func (r *LabelRepo) GetExportsByOrder(ctx context.Context, customerName, orderInvoice string) ([]*repository.ExportLabel, error) {
	var labels []*repository.ExportLabel
	err := r.db.Select(ctx, &labels, `
        SELECT * FROM export_labels
        WHERE customer_name = $1 AND order_invoice = $2
        ORDER BY id ASC
    `, customerName, orderInvoice)
	return labels, err
}

func (r *LabelRepo) GetMonthlyChargesByOrder(ctx context.Context, customerName, orderInvoice string) ([]*repository.MonthlyChargeLabel, error) {
	var labels []*repository.MonthlyChargeLabel
	err := r.db.Select(ctx, &labels, `
        SELECT * FROM monthly_charge_labels
        WHERE customer_name = $1 AND order_invoice = $2
        ORDER BY id ASC
    `, customerName, orderInvoice)
	return labels, err
}

func (r *LabelRepo) DeleteByOrderTx(ctx context.Context, tx db.Tx, customerName, orderInvoice string) error {
	if _, err := tx.Exec(ctx,
		"DELETE FROM export_labels WHERE customer_name = $1 AND order_invoice = $2",
		customerName, orderInvoice); err != nil {
		return err
	}
	_, err := tx.Exec(ctx,
		"DELETE FROM monthly_charge_labels WHERE customer_name = $1 AND order_invoice = $2",
		customerName, orderInvoice)
	return err
}
