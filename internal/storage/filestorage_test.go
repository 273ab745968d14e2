package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/ledger"
)

func newTestFileStorage(t *testing.T) (*FileStorage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "warehouse.json")
	fs, err := NewFileStorage(path)
	require.NoError(t, err)
	return fs, path
}

func TestFileStorage_MissingFileStartsEmpty(t *testing.T) {
	fs, path := newTestFileStorage(t)

	names, err := fs.CustomerNames(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStorage_ImportPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	fs, path := newTestFileStorage(t)

	err := fs.ImportOrder(ctx, "Customer1", "Content1", date(2021, time.January, 21), "123456-a", 50, "AL Warehouse1")
	require.NoError(t, err)

	reopened, err := NewFileStorage(path)
	require.NoError(t, err)

	rows, err := reopened.ActiveOrderRows(ctx, "Customer1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, ledger.Row{
		CustomerName:    "Customer1",
		InvoiceNumber:   "123456-a",
		CurrentQuantity: 50,
		Content:         "Content1",
		ImportDate:      "2021-01-21",
		StorageLocation: "AL Warehouse1",
	}, rows[0])
}

func TestFileStorage_ExportAndChargeSurviveReopen(t *testing.T) {
	ctx := context.Background()
	fs, path := newTestFileStorage(t)

	require.NoError(t, fs.ImportOrder(ctx, "Customer1", "Content1", date(2021, time.January, 21), "123456-a", 50, "AL Warehouse1"))
	require.NoError(t, fs.RemoveFromOrder(ctx, "Customer1", "123456-a", 20, date(2021, time.January, 31), "111111"))
	require.NoError(t, fs.RecordMonthlyCharge(ctx, "Customer1", "123456-a", date(2021, time.February, 1), date(2021, time.February, 28), 50, "222222"))

	reopened, err := NewFileStorage(path)
	require.NoError(t, err)

	rows, err := reopened.ActiveOrderRows(ctx, "Customer1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 30, rows[0].CurrentQuantity)
	assert.Equal(t, "20 pcs, invoice 111111, 2021-01-31", rows[0].ExportHistory)
	assert.Equal(t, "50 pcs, invoice 222222, 2021-02-01 - 2021-02-28", rows[0].MonthlyChargeHistory)
}

func TestFileStorage_FullRemovalCompletesOrder(t *testing.T) {
	ctx := context.Background()
	fs, path := newTestFileStorage(t)

	require.NoError(t, fs.ImportOrder(ctx, "Customer1", "Content1", date(2021, time.January, 21), "123456-a", 50, "AL Warehouse1"))
	require.NoError(t, fs.RemoveFromOrder(ctx, "Customer1", "123456-a", 50, date(2021, time.January, 31), "111111"))

	reopened, err := NewFileStorage(path)
	require.NoError(t, err)

	active, err := reopened.ActiveOrderRows(ctx, "Customer1")
	require.NoError(t, err)
	assert.Empty(t, active)

	completed, err := reopened.CompletedOrderRows(ctx, "Customer1")
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, 0, completed[0].CurrentQuantity)
}

func TestFileStorage_RejectedImportLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	fs, path := newTestFileStorage(t)

	err := fs.ImportOrder(ctx, "Customer1", "Content1", date(2021, time.January, 21), "123456-a", 0, "AL Warehouse1")
	assert.ErrorIs(t, err, ledger.ErrQuantityZero)

	names, err := fs.CustomerNames(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStorage_DuplicateInvoiceRejected(t *testing.T) {
	ctx := context.Background()
	fs, _ := newTestFileStorage(t)

	require.NoError(t, fs.ImportOrder(ctx, "Customer1", "Content1", date(2021, time.January, 21), "123456-a", 50, "AL Warehouse1"))

	err := fs.ImportOrder(ctx, "Customer1", "Content2", date(2021, time.January, 22), "123456-a", 10, "AL Warehouse2")

	var existsErr *ledger.OrderAlreadyExistsError
	require.ErrorAs(t, err, &existsErr)
	assert.Equal(t, "123456-a", existsErr.InvoiceNumber)

	// the customer created by the first import is still there
	names, err := fs.CustomerNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Customer1"}, names)
}

func TestFileStorage_DeleteOrderPersists(t *testing.T) {
	ctx := context.Background()
	fs, path := newTestFileStorage(t)

	require.NoError(t, fs.ImportOrder(ctx, "Customer1", "Content1", date(2021, time.January, 21), "123456-a", 50, "AL Warehouse1"))
	require.NoError(t, fs.DeleteOrder(ctx, "Customer1", "123456-a"))

	reopened, err := NewFileStorage(path)
	require.NoError(t, err)

	rows, err := reopened.ActiveOrderRows(ctx, "Customer1")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFileStorage_UnknownCustomer(t *testing.T) {
	ctx := context.Background()
	fs, _ := newTestFileStorage(t)

	var notFound *ledger.CustomerNotFoundError

	_, err := fs.ActiveOrderRows(ctx, "Ghost")
	assert.ErrorAs(t, err, &notFound)

	err = fs.DeleteOrder(ctx, "Ghost", "123456-a")
	assert.ErrorAs(t, err, &notFound)
}

func TestFileStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warehouse.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStorage(path)
	assert.ErrorIs(t, err, ledger.ErrCorruptFile)
}

func TestFileStorage_CorruptQuantities(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warehouse.json")
	doc := `{
  "customers": [
    {
      "name": "Customer1",
      "activeOrders": [
        {
          "content": "Content1",
          "importDate": "2021-01-21",
          "invoiceNumber": "123456-a",
          "originalQuantity": 50,
          "currentQuantity": 60,
          "storageLocation": "AL Warehouse1"
        }
      ]
    }
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := NewFileStorage(path)
	assert.ErrorIs(t, err, ledger.ErrCorruptFile)
}
