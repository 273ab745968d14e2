package ledger

import (
	"fmt"
	"time"
)

// Customer owns one ledger: active orders keyed by import invoice number and
// a history of completed orders. An order moves from active to complete
// exactly once, when a removal brings its current quantity to zero.
type Customer struct {
	name           string
	activeOrders   map[string]*Order
	activeSeq      []string
	completeOrders []*Order
}

func NewCustomer(name string) *Customer {
	return &Customer{
		name:         name,
		activeOrders: make(map[string]*Order),
	}
}

func (c *Customer) Name() string { return c.name }

// ActiveOrder looks up an active order by its import invoice number.
func (c *Customer) ActiveOrder(invoiceNumber string) (*Order, bool) {
	order, ok := c.activeOrders[invoiceNumber]
	return order, ok
}

func (c *Customer) ActiveOrderCount() int   { return len(c.activeOrders) }
func (c *Customer) CompleteOrderCount() int { return len(c.completeOrders) }

// ImportOrder records a new import transaction. The invoice number must not
// already name an active order.
func (c *Customer) ImportOrder(content string, importDate time.Time, invoiceNumber string, quantity int, storageLocation string) error {
	if _, ok := c.activeOrders[invoiceNumber]; ok {
		return &OrderAlreadyExistsError{InvoiceNumber: invoiceNumber}
	}
	order, err := NewOrder(content, importDate, invoiceNumber, quantity, storageLocation)
	if err != nil {
		return err
	}
	c.insertActive(order)
	return nil
}

// RemoveFromOrder exports removalQuantity from the named active order and
// promotes it to the completed list when its quantity reaches zero.
func (c *Customer) RemoveFromOrder(importInvoiceNumber string, removalQuantity int, exportDate time.Time, exportInvoiceNumber string) error {
	order, ok := c.activeOrders[importInvoiceNumber]
	if !ok {
		return &OrderNotFoundError{InvoiceNumber: importInvoiceNumber}
	}
	if err := order.Remove(removalQuantity, exportInvoiceNumber, exportDate); err != nil {
		return err
	}
	if order.CurrentQuantity() == 0 {
		c.dropActive(importInvoiceNumber)
		c.completeOrders = append(c.completeOrders, order)
	}
	return nil
}

// DeleteOrder removes the order from whichever collection holds it. Active
// orders are deleted unconditionally, outstanding quantity included; the
// completed list is scanned by invoice number.
func (c *Customer) DeleteOrder(invoiceNumber string) error {
	if _, ok := c.activeOrders[invoiceNumber]; ok {
		c.dropActive(invoiceNumber)
		return nil
	}
	for i, order := range c.completeOrders {
		if order.InvoiceNumber() == invoiceNumber {
			c.completeOrders = append(c.completeOrders[:i], c.completeOrders[i+1:]...)
			return nil
		}
	}
	return &OrderNotFoundError{InvoiceNumber: invoiceNumber}
}

// RecordMonthlyCharge adds a monthly storage charge label to an active order.
func (c *Customer) RecordMonthlyCharge(importInvoiceNumber string, startDate, endDate time.Time, quantity int, monthlyInvoiceNumber string) error {
	order, ok := c.activeOrders[importInvoiceNumber]
	if !ok {
		return &OrderNotFoundError{InvoiceNumber: importInvoiceNumber}
	}
	return order.AddMonthlyChargeLabel(quantity, monthlyInvoiceNumber, startDate, endDate)
}

// EditActiveOrder updates the free-text fields of an active order. Completed
// orders cannot be edited.
func (c *Customer) EditActiveOrder(importInvoiceNumber, content, storageLocation string) error {
	order, ok := c.activeOrders[importInvoiceNumber]
	if !ok {
		return &OrderNotFoundError{InvoiceNumber: importInvoiceNumber}
	}
	order.EditContentAndLocation(content, storageLocation)
	return nil
}

// ActiveOrderRows flattens the active orders, in import order, for display.
func (c *Customer) ActiveOrderRows() []Row {
	rows := make([]Row, 0, len(c.activeSeq))
	for _, invoice := range c.activeSeq {
		rows = append(rows, c.row(c.activeOrders[invoice]))
	}
	return rows
}

// CompletedOrderRows flattens the completed orders, in completion order.
func (c *Customer) CompletedOrderRows() []Row {
	rows := make([]Row, 0, len(c.completeOrders))
	for _, order := range c.completeOrders {
		rows = append(rows, c.row(order))
	}
	return rows
}

func (c *Customer) row(o *Order) Row {
	return Row{
		CustomerName:         c.name,
		InvoiceNumber:        o.InvoiceNumber(),
		CurrentQuantity:      o.CurrentQuantity(),
		Content:              o.Content(),
		ImportDate:           formatDate(o.ImportDate()),
		StorageLocation:      o.StorageLocation(),
		ExportHistory:        o.ExportHistory(),
		MonthlyChargeHistory: o.MonthlyChargeHistory(),
	}
}

// ToDocument converts the customer and both order collections to the
// persisted shape, active orders in import order.
func (c *Customer) ToDocument() CustomerDoc {
	doc := CustomerDoc{
		Name:           c.name,
		ActiveOrders:   []OrderDoc{},
		CompleteOrders: []OrderDoc{},
	}
	for _, invoice := range c.activeSeq {
		doc.ActiveOrders = append(doc.ActiveOrders, c.activeOrders[invoice].ToDocument())
	}
	for _, order := range c.completeOrders {
		doc.CompleteOrders = append(doc.CompleteOrders, order.ToDocument())
	}
	return doc
}

// CustomerFromDocument rebuilds a customer, filing each order into the
// collection it was saved from. Reconstruction failures surface as
// ErrCorruptFile.
func CustomerFromDocument(doc CustomerDoc) (*Customer, error) {
	customer := NewCustomer(doc.Name)
	for _, orderDoc := range doc.ActiveOrders {
		order, err := OrderFromDocument(orderDoc)
		if err != nil {
			return nil, err
		}
		if _, ok := customer.activeOrders[order.InvoiceNumber()]; ok {
			return nil, fmt.Errorf("%w: duplicate active order %q", ErrCorruptFile, order.InvoiceNumber())
		}
		customer.insertActive(order)
	}
	for _, orderDoc := range doc.CompleteOrders {
		order, err := OrderFromDocument(orderDoc)
		if err != nil {
			return nil, err
		}
		customer.completeOrders = append(customer.completeOrders, order)
	}
	return customer, nil
}

func (c *Customer) insertActive(order *Order) {
	c.activeOrders[order.InvoiceNumber()] = order
	c.activeSeq = append(c.activeSeq, order.InvoiceNumber())
}

func (c *Customer) dropActive(invoiceNumber string) {
	delete(c.activeOrders, invoiceNumber)
	for i, inv := range c.activeSeq {
		if inv == invoiceNumber {
			c.activeSeq = append(c.activeSeq[:i], c.activeSeq[i+1:]...)
			break
		}
	}
}
