package ledger

import "time"

const (
	minMonthDays = 28
	maxMonthDays = 31
)

// Label is the quantity/invoice pair shared by both label kinds. Labels are
// immutable once recorded against an order.
type Label struct {
	Quantity      int
	InvoiceNumber string
}

// ExportLabel records one export event against an order.
type ExportLabel struct {
	Label
	ExportDate time.Time
}

// MonthlyChargeLabel records one monthly storage charge. Its date span must
// look like a calendar month.
type MonthlyChargeLabel struct {
	Label
	StartDate time.Time
	EndDate   time.Time
}

func newExportLabel(quantity int, invoiceNumber string, exportDate time.Time) ExportLabel {
	return ExportLabel{
		Label:      Label{Quantity: quantity, InvoiceNumber: invoiceNumber},
		ExportDate: truncateToDay(exportDate),
	}
}

func newMonthlyChargeLabel(quantity int, invoiceNumber string, startDate, endDate time.Time) (MonthlyChargeLabel, error) {
	days := daysBetween(startDate, endDate)
	if days < minMonthDays || days > maxMonthDays {
		return MonthlyChargeLabel{}, ErrInvalidMonthRange
	}
	return MonthlyChargeLabel{
		Label:     Label{Quantity: quantity, InvoiceNumber: invoiceNumber},
		StartDate: truncateToDay(startDate),
		EndDate:   truncateToDay(endDate),
	}, nil
}

func validateQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityNegative
	}
	if quantity == 0 {
		return ErrQuantityZero
	}
	return nil
}
