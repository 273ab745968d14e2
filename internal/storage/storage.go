//go:generate mockgen -source ./storage.go -destination=./mocks/storage.go -package=mock_storage
package storage

import (
	"context"
	"time"

	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/ledger"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/repository"
)

// Storage is the ledger persistence boundary consumed by the HTTP server and
// the console handler. All domain validation lives in the ledger package;
// implementations only decide where the graph is kept.
type Storage interface {
	ImportOrder(ctx context.Context, customerName, content string, importDate time.Time, invoiceNumber string, quantity int, storageLocation string) error
	RemoveFromOrder(ctx context.Context, customerName, importInvoiceNumber string, removalQuantity int, exportDate time.Time, exportInvoiceNumber string) error
	RecordMonthlyCharge(ctx context.Context, customerName, importInvoiceNumber string, startDate, endDate time.Time, quantity int, monthlyInvoiceNumber string) error
	EditActiveOrder(ctx context.Context, customerName, importInvoiceNumber, content, storageLocation string) error
	DeleteOrder(ctx context.Context, customerName, invoiceNumber string) error
	ActiveOrderRows(ctx context.Context, customerName string) ([]ledger.Row, error)
	CompletedOrderRows(ctx context.Context, customerName string) ([]ledger.Row, error)
	CustomerNames(ctx context.Context) ([]string, error)
}

type CustomerRepository interface {
	EnsureTx(ctx context.Context, tx db.Tx, name string) error
	Exists(ctx context.Context, name string) (bool, error)
	GetAll(ctx context.Context) ([]*repository.Customer, error)
}

type OrderRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, order *repository.Order) error
	GetByInvoice(ctx context.Context, customerName, invoiceNumber string) (*repository.Order, error)
	GetByCustomer(ctx context.Context, customerName string, completed bool) ([]*repository.Order, error)
	UpdateTx(ctx context.Context, tx db.Tx, order *repository.Order) error
	DeleteTx(ctx context.Context, tx db.Tx, customerName, invoiceNumber string) error
}

type LabelRepository interface {
	CreateExportTx(ctx context.Context, tx db.Tx, label *repository.ExportLabel) error
	CreateMonthlyChargeTx(ctx context.Context, tx db.Tx, label *repository.MonthlyChargeLabel) error
	GetExportsByOrder(ctx context.Context, customerName, orderInvoice string) ([]*repository.ExportLabel, error)
	GetMonthlyChargesByOrder(ctx context.Context, customerName, orderInvoice string) ([]*repository.MonthlyChargeLabel, error)
	DeleteByOrderTx(ctx context.Context, tx db.Tx, customerName, orderInvoice string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, username, password string) error
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}
