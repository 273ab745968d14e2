package repository

import (
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("not found")

type Customer struct {
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type Order struct {
	CustomerName     string    `db:"customer_name"`
	InvoiceNumber    string    `db:"invoice_number"`
	Content          string    `db:"content"`
	ImportDate       time.Time `db:"import_date"`
	OriginalQuantity int       `db:"original_quantity"`
	CurrentQuantity  int       `db:"current_quantity"`
	StorageLocation  string    `db:"storage_location"`
	Completed        bool      `db:"completed"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type ExportLabel struct {
	ID            int64     `db:"id"`
	CustomerName  string    `db:"customer_name"`
	OrderInvoice  string    `db:"order_invoice"`
	Quantity      int       `db:"quantity"`
	InvoiceNumber string    `db:"invoice_number"`
	ExportDate    time.Time `db:"export_date"`
}

type MonthlyChargeLabel struct {
	ID            int64     `db:"id"`
	CustomerName  string    `db:"customer_name"`
	OrderInvoice  string    `db:"order_invoice"`
	Quantity      int       `db:"quantity"`
	InvoiceNumber string    `db:"invoice_number"`
	StartDate     time.Time `db:"start_date"`
	EndDate       time.Time `db:"end_date"`
}
