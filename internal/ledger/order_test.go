package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2021, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestOrder(t *testing.T) *Order {
	t.Helper()
	order, err := NewOrder("Content1", time.Date(2021, 1, 21, 0, 0, 0, 0, time.UTC), "123456-a", 50, "AL Warehouse1")
	require.NoError(t, err)
	return order
}

func TestNewOrder(t *testing.T) {
	fixNow(t, testToday)

	t.Run("successful creation", func(t *testing.T) {
		order := newTestOrder(t)

		assert.Equal(t, "Content1", order.Content())
		assert.Equal(t, "123456-a", order.InvoiceNumber())
		assert.Equal(t, 50, order.OriginalQuantity())
		assert.Equal(t, 50, order.CurrentQuantity())
		assert.Equal(t, "AL Warehouse1", order.StorageLocation())
		assert.Empty(t, order.Exports())
		assert.Empty(t, order.MonthlyChargeLabels())
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := NewOrder("Content1", testToday, "123456-a", -5, "AL Warehouse1")
		assert.ErrorIs(t, err, ErrQuantityNegative)
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := NewOrder("Content1", testToday, "123456-a", 0, "AL Warehouse1")
		assert.ErrorIs(t, err, ErrQuantityZero)
	})

	t.Run("future import date", func(t *testing.T) {
		_, err := NewOrder("Content1", testToday.AddDate(0, 0, 1), "123456-a", 50, "AL Warehouse1")
		assert.ErrorIs(t, err, ErrInvalidImportDate)
	})

	t.Run("import today is allowed", func(t *testing.T) {
		_, err := NewOrder("Content1", testToday, "123456-a", 50, "AL Warehouse1")
		assert.NoError(t, err)
	})
}

func TestOrderRemove(t *testing.T) {
	fixNow(t, testToday)
	exportDate := time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("successful removal", func(t *testing.T) {
		order := newTestOrder(t)

		require.NoError(t, order.Remove(20, "111111", exportDate))

		assert.Equal(t, 30, order.CurrentQuantity())
		exports := order.Exports()
		require.Len(t, exports, 1)
		assert.Equal(t, 20, exports[0].Quantity)
		assert.Equal(t, "111111", exports[0].InvoiceNumber)
		assert.Equal(t, exportDate, exports[0].ExportDate)
	})

	t.Run("quantity exceeds original", func(t *testing.T) {
		order := newTestOrder(t)

		err := order.Remove(60, "111111", exportDate)

		var exceeds *QuantityExceedsMaxError
		require.ErrorAs(t, err, &exceeds)
		assert.Equal(t, 60, exceeds.Given)
		assert.Equal(t, 50, exceeds.Max)
		assert.Equal(t, 50, order.CurrentQuantity())
		assert.Empty(t, order.Exports())
	})

	t.Run("removal exceeds availability", func(t *testing.T) {
		order := newTestOrder(t)
		require.NoError(t, order.Remove(30, "111111", exportDate))

		err := order.Remove(30, "111112", exportDate)

		assert.ErrorIs(t, err, ErrRemovalExceedsAvailability)
		assert.Equal(t, 20, order.CurrentQuantity())
		assert.Len(t, order.Exports(), 1)
	})

	t.Run("negative and zero quantities", func(t *testing.T) {
		order := newTestOrder(t)
		assert.ErrorIs(t, order.Remove(-1, "111111", exportDate), ErrQuantityNegative)
		assert.ErrorIs(t, order.Remove(0, "111111", exportDate), ErrQuantityZero)
	})

	t.Run("export date before import date", func(t *testing.T) {
		order := newTestOrder(t)
		err := order.Remove(10, "111111", time.Date(2021, 1, 20, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, ErrInvalidExportDate)
	})

	t.Run("export date in the future", func(t *testing.T) {
		order := newTestOrder(t)
		err := order.Remove(10, "111111", testToday.AddDate(0, 0, 1))
		assert.ErrorIs(t, err, ErrInvalidExportDate)
		assert.Equal(t, 50, order.CurrentQuantity())
	})
}

func TestOrderQuantityConservation(t *testing.T) {
	fixNow(t, testToday)
	order := newTestOrder(t)
	exportDate := time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)

	removals := []int{5, 10, 1, 14, 20}
	total := 0
	for i, qty := range removals {
		require.NoError(t, order.Remove(qty, "111111", exportDate))
		total += qty
		assert.Equal(t, order.OriginalQuantity()-total, order.CurrentQuantity())
		assert.Len(t, order.Exports(), i+1)
	}
	assert.Equal(t, 0, order.CurrentQuantity())
}

func TestOrderAddMonthlyChargeLabel(t *testing.T) {
	fixNow(t, testToday)
	start := time.Date(2021, 1, 21, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 2, 21, 0, 0, 0, 0, time.UTC)

	t.Run("successful charge", func(t *testing.T) {
		order := newTestOrder(t)

		require.NoError(t, order.AddMonthlyChargeLabel(50, "m-001", start, end))

		// Charges are informational: quantity stays untouched.
		assert.Equal(t, 50, order.CurrentQuantity())
		labels := order.MonthlyChargeLabels()
		require.Len(t, labels, 1)
		assert.Equal(t, 50, labels[0].Quantity)
		assert.Equal(t, "m-001", labels[0].InvoiceNumber)
	})

	t.Run("charge validated against original quantity", func(t *testing.T) {
		order := newTestOrder(t)
		require.NoError(t, order.Remove(40, "111111", start))

		// Only 10 remain but the original 50 is still the charge ceiling.
		require.NoError(t, order.AddMonthlyChargeLabel(50, "m-001", start, end))

		err := order.AddMonthlyChargeLabel(51, "m-002", start, end)
		var exceeds *QuantityExceedsMaxError
		require.ErrorAs(t, err, &exceeds)
		assert.Equal(t, 51, exceeds.Given)
	})

	t.Run("start date before import date", func(t *testing.T) {
		order := newTestOrder(t)
		err := order.AddMonthlyChargeLabel(10, "m-001", start.AddDate(0, 0, -1), end.AddDate(0, 0, -1))
		assert.ErrorIs(t, err, ErrInvalidStartDate)
	})

	t.Run("end date in the future", func(t *testing.T) {
		order := newTestOrder(t)
		err := order.AddMonthlyChargeLabel(10, "m-001", testToday.AddDate(0, 0, -10), testToday.AddDate(0, 0, 18))
		assert.ErrorIs(t, err, ErrInvalidEndDate)
	})

	t.Run("month range violation", func(t *testing.T) {
		order := newTestOrder(t)
		err := order.AddMonthlyChargeLabel(10, "m-001", start, start.AddDate(0, 0, 27))
		assert.ErrorIs(t, err, ErrInvalidMonthRange)
		assert.Empty(t, order.MonthlyChargeLabels())
	})
}

func TestOrderEditContentAndLocation(t *testing.T) {
	fixNow(t, testToday)
	order := newTestOrder(t)

	order.EditContentAndLocation("Content2", "AL Warehouse2")

	assert.Equal(t, "Content2", order.Content())
	assert.Equal(t, "AL Warehouse2", order.StorageLocation())
}

func TestOrderDocumentRoundTrip(t *testing.T) {
	fixNow(t, testToday)
	order := newTestOrder(t)
	require.NoError(t, order.Remove(20, "111111", time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, order.AddMonthlyChargeLabel(30, "m-001", time.Date(2021, 1, 21, 0, 0, 0, 0, time.UTC), time.Date(2021, 2, 21, 0, 0, 0, 0, time.UTC)))

	doc := order.ToDocument()
	assert.Equal(t, "2021-01-21", doc.ImportDate)
	assert.Equal(t, 50, doc.OriginalQuantity)
	assert.Equal(t, 30, doc.CurrentQuantity)

	restored, err := OrderFromDocument(doc)
	require.NoError(t, err)

	assert.Equal(t, order.Content(), restored.Content())
	assert.Equal(t, order.ImportDate(), restored.ImportDate())
	assert.Equal(t, order.InvoiceNumber(), restored.InvoiceNumber())
	assert.Equal(t, order.OriginalQuantity(), restored.OriginalQuantity())
	assert.Equal(t, order.CurrentQuantity(), restored.CurrentQuantity())
	assert.Equal(t, order.StorageLocation(), restored.StorageLocation())
	assert.Equal(t, order.Exports(), restored.Exports())
	assert.Equal(t, order.MonthlyChargeLabels(), restored.MonthlyChargeLabels())
}

func TestOrderFromDocumentCorrupt(t *testing.T) {
	fixNow(t, testToday)

	valid := func() OrderDoc {
		return OrderDoc{
			Content:          "Content1",
			ImportDate:       "2021-01-21",
			InvoiceNumber:    "123456-a",
			OriginalQuantity: 50,
			CurrentQuantity:  30,
			StorageLocation:  "AL Warehouse1",
		}
	}

	tests := []struct {
		name   string
		mutate func(*OrderDoc)
	}{
		{name: "malformed import date", mutate: func(d *OrderDoc) { d.ImportDate = "21.01.2021" }},
		{name: "zero original quantity", mutate: func(d *OrderDoc) { d.OriginalQuantity = 0 }},
		{name: "negative current quantity", mutate: func(d *OrderDoc) { d.CurrentQuantity = -1 }},
		{name: "current above original", mutate: func(d *OrderDoc) { d.CurrentQuantity = 51 }},
		{name: "malformed export date", mutate: func(d *OrderDoc) {
			d.Exports = []ExportDoc{{Quantity: 20, InvoiceNumber: "111111", ExportDate: "soon"}}
		}},
		{name: "monthly label month range", mutate: func(d *OrderDoc) {
			d.MonthlyChargeLabels = []MonthlyDoc{{Quantity: 10, InvoiceNumber: "m-001", StartDate: "2021-01-21", EndDate: "2021-02-01"}}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := valid()
			tc.mutate(&doc)

			_, err := OrderFromDocument(doc)
			assert.ErrorIs(t, err, ErrCorruptFile)
		})
	}
}
