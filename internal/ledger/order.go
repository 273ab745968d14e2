package ledger

import (
	"fmt"
	"strings"
	"time"
)

// Order tracks one import transaction and the exports and monthly storage
// charges recorded against it. An order is identified by its import invoice
// number; quantities obey currentQuantity = originalQuantity - sum(exports).
type Order struct {
	content          string
	importDate       time.Time
	invoiceNumber    string
	originalQuantity int
	currentQuantity  int
	storageLocation  string
	exports          []ExportLabel
	monthlyCharges   []MonthlyChargeLabel
}

// NewOrder validates the import transaction and creates an order with the
// full quantity still in stock. Future-dated imports are rejected.
func NewOrder(content string, importDate time.Time, invoiceNumber string, quantity int, storageLocation string) (*Order, error) {
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	if truncateToDay(importDate).After(today()) {
		return nil, ErrInvalidImportDate
	}
	return &Order{
		content:          content,
		importDate:       truncateToDay(importDate),
		invoiceNumber:    invoiceNumber,
		originalQuantity: quantity,
		currentQuantity:  quantity,
		storageLocation:  storageLocation,
	}, nil
}

func (o *Order) Content() string         { return o.content }
func (o *Order) ImportDate() time.Time   { return o.importDate }
func (o *Order) InvoiceNumber() string   { return o.invoiceNumber }
func (o *Order) OriginalQuantity() int   { return o.originalQuantity }
func (o *Order) CurrentQuantity() int    { return o.currentQuantity }
func (o *Order) StorageLocation() string { return o.storageLocation }

// Exports returns a copy of the recorded export labels.
func (o *Order) Exports() []ExportLabel {
	out := make([]ExportLabel, len(o.exports))
	copy(out, o.exports)
	return out
}

// MonthlyChargeLabels returns a copy of the recorded monthly charge labels.
func (o *Order) MonthlyChargeLabels() []MonthlyChargeLabel {
	out := make([]MonthlyChargeLabel, len(o.monthlyCharges))
	copy(out, o.monthlyCharges)
	return out
}

// Remove validates and records an export of removalQuantity against the
// order. Validation happens before any mutation, so a failed removal leaves
// the order untouched.
func (o *Order) Remove(removalQuantity int, exportInvoiceNumber string, exportDate time.Time) error {
	if err := validateQuantity(removalQuantity); err != nil {
		return err
	}
	if removalQuantity > o.originalQuantity {
		return &QuantityExceedsMaxError{Given: removalQuantity, Max: o.originalQuantity}
	}
	if removalQuantity > o.currentQuantity {
		return ErrRemovalExceedsAvailability
	}
	day := truncateToDay(exportDate)
	if day.Before(o.importDate) || day.After(today()) {
		return ErrInvalidExportDate
	}

	o.currentQuantity -= removalQuantity
	o.exports = append(o.exports, newExportLabel(removalQuantity, exportInvoiceNumber, exportDate))
	return nil
}

// AddMonthlyChargeLabel records a monthly storage charge. Charges are
// informational annotations: the quantity is checked against the original
// quantity but nothing is decremented.
func (o *Order) AddMonthlyChargeLabel(quantity int, invoiceNumber string, startDate, endDate time.Time) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	if quantity > o.originalQuantity {
		return &QuantityExceedsMaxError{Given: quantity, Max: o.originalQuantity}
	}
	if truncateToDay(startDate).Before(o.importDate) {
		return ErrInvalidStartDate
	}
	if truncateToDay(endDate).After(today()) {
		return ErrInvalidEndDate
	}

	label, err := newMonthlyChargeLabel(quantity, invoiceNumber, startDate, endDate)
	if err != nil {
		return err
	}
	o.monthlyCharges = append(o.monthlyCharges, label)
	return nil
}

// EditContentAndLocation overwrites the free-text fields. The caller is
// expected to have validated them.
func (o *Order) EditContentAndLocation(content, storageLocation string) {
	o.content = content
	o.storageLocation = storageLocation
}

// ExportHistory renders the export labels as one display string.
func (o *Order) ExportHistory() string {
	if len(o.exports) == 0 {
		return ""
	}
	parts := make([]string, len(o.exports))
	for i, e := range o.exports {
		parts[i] = fmt.Sprintf("%d pcs, invoice %s, %s", e.Quantity, e.InvoiceNumber, formatDate(e.ExportDate))
	}
	return strings.Join(parts, "; ")
}

// MonthlyChargeHistory renders the monthly charge labels as one display string.
func (o *Order) MonthlyChargeHistory() string {
	if len(o.monthlyCharges) == 0 {
		return ""
	}
	parts := make([]string, len(o.monthlyCharges))
	for i, m := range o.monthlyCharges {
		parts[i] = fmt.Sprintf("%d pcs, invoice %s, %s - %s", m.Quantity, m.InvoiceNumber, formatDate(m.StartDate), formatDate(m.EndDate))
	}
	return strings.Join(parts, "; ")
}

// ToDocument converts the order to its persisted shape.
func (o *Order) ToDocument() OrderDoc {
	doc := OrderDoc{
		Content:             o.content,
		ImportDate:          formatDate(o.importDate),
		Exports:             []ExportDoc{},
		MonthlyChargeLabels: []MonthlyDoc{},
		InvoiceNumber:       o.invoiceNumber,
		OriginalQuantity:    o.originalQuantity,
		CurrentQuantity:     o.currentQuantity,
		StorageLocation:     o.storageLocation,
	}
	for _, e := range o.exports {
		doc.Exports = append(doc.Exports, ExportDoc{
			Quantity:      e.Quantity,
			InvoiceNumber: e.InvoiceNumber,
			ExportDate:    formatDate(e.ExportDate),
		})
	}
	for _, m := range o.monthlyCharges {
		doc.MonthlyChargeLabels = append(doc.MonthlyChargeLabels, MonthlyDoc{
			Quantity:      m.Quantity,
			InvoiceNumber: m.InvoiceNumber,
			StartDate:     formatDate(m.StartDate),
			EndDate:       formatDate(m.EndDate),
		})
	}
	return doc
}

// OrderFromDocument rebuilds an order from its persisted shape. Any field
// that fails reconstruction surfaces as ErrCorruptFile; field-level detail is
// not preserved across this boundary.
func OrderFromDocument(doc OrderDoc) (*Order, error) {
	importDate, err := parseDate(doc.ImportDate)
	if err != nil {
		return nil, err
	}

	order, err := NewOrder(doc.Content, importDate, doc.InvoiceNumber, doc.OriginalQuantity, doc.StorageLocation)
	if err != nil {
		return nil, fmt.Errorf("%w: order %q: %v", ErrCorruptFile, doc.InvoiceNumber, err)
	}
	if doc.CurrentQuantity < 0 || doc.CurrentQuantity > doc.OriginalQuantity {
		return nil, fmt.Errorf("%w: order %q: current quantity %d out of range", ErrCorruptFile, doc.InvoiceNumber, doc.CurrentQuantity)
	}
	order.currentQuantity = doc.CurrentQuantity

	for _, e := range doc.Exports {
		exportDate, err := parseDate(e.ExportDate)
		if err != nil {
			return nil, err
		}
		order.exports = append(order.exports, newExportLabel(e.Quantity, e.InvoiceNumber, exportDate))
	}
	for _, m := range doc.MonthlyChargeLabels {
		startDate, err := parseDate(m.StartDate)
		if err != nil {
			return nil, err
		}
		endDate, err := parseDate(m.EndDate)
		if err != nil {
			return nil, err
		}
		label, err := newMonthlyChargeLabel(m.Quantity, m.InvoiceNumber, startDate, endDate)
		if err != nil {
			return nil, fmt.Errorf("%w: order %q: %v", ErrCorruptFile, doc.InvoiceNumber, err)
		}
		order.monthlyCharges = append(order.monthlyCharges, label)
	}
	return order, nil
}
