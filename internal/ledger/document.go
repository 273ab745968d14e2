package ledger

import (
	"fmt"
	"time"
)

// Persisted document shapes. Dates are ISO calendar dates without a time
// component; the storage layer owns actual file or database I/O.

const dateLayout = "2006-01-02"

type WarehouseDoc struct {
	Customers []CustomerDoc `json:"customers"`
}

type CustomerDoc struct {
	Name           string     `json:"name"`
	ActiveOrders   []OrderDoc `json:"activeOrders"`
	CompleteOrders []OrderDoc `json:"completeOrders"`
}

type OrderDoc struct {
	Content             string       `json:"content"`
	ImportDate          string       `json:"importDate"`
	Exports             []ExportDoc  `json:"exports"`
	MonthlyChargeLabels []MonthlyDoc `json:"monthlyChargeLabels"`
	InvoiceNumber       string       `json:"invoiceNumber"`
	OriginalQuantity    int          `json:"originalQuantity"`
	CurrentQuantity     int          `json:"currentQuantity"`
	StorageLocation     string       `json:"storageLocation"`
}

type ExportDoc struct {
	Quantity      int    `json:"quantity"`
	InvoiceNumber string `json:"invoiceNumber"`
	ExportDate    string `json:"exportDate"`
}

type MonthlyDoc struct {
	Quantity      int    `json:"quantity"`
	InvoiceNumber string `json:"invoiceNumber"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", ErrCorruptFile, s)
	}
	return t, nil
}
