package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrQuantityNegative = errors.New("quantity must not be negative")
	ErrQuantityZero     = errors.New("quantity must not be zero")

	ErrRemovalExceedsAvailability = errors.New("removal quantity exceeds available quantity")

	ErrInvalidImportDate = errors.New("import date must not be in the future")
	ErrInvalidExportDate = errors.New("export date must be between import date and today")
	ErrInvalidStartDate  = errors.New("start date must not precede import date")
	ErrInvalidEndDate    = errors.New("end date must not be in the future")
	ErrInvalidMonthRange = errors.New("start/end span must cover 28 to 31 days")

	ErrCorruptFile = errors.New("corrupt ledger document")
)

// QuantityExceedsMaxError is returned when a removal or charge quantity is
// larger than the order's original quantity.
type QuantityExceedsMaxError struct {
	Given int
	Max   int
}

func (e *QuantityExceedsMaxError) Error() string {
	return fmt.Sprintf("quantity %d exceeds order maximum %d", e.Given, e.Max)
}

type OrderNotFoundError struct {
	InvoiceNumber string
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("order %q does not exist", e.InvoiceNumber)
}

type OrderAlreadyExistsError struct {
	InvoiceNumber string
}

func (e *OrderAlreadyExistsError) Error() string {
	return fmt.Sprintf("order %q already exists", e.InvoiceNumber)
}

type CustomerNotFoundError struct {
	Name string
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("customer %q does not exist", e.Name)
}
