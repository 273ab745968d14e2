package handler

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/ledger"
	mock_server "gitlab.ozon.dev/pupkingeorgij/warehouse/internal/server/mocks"
)

func TestHandleImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mock_server.NewMockStorage(ctrl)
	h := New(mockStorage)
	ctx := context.Background()

	t.Run("dispatches parsed arguments", func(t *testing.T) {
		mockStorage.EXPECT().
			ImportOrder(ctx, "Customer1", "Content1",
				time.Date(2021, 1, 21, 0, 0, 0, 0, time.UTC), "123456-a", 50, "Warehouse1").
			Return(nil)

		h.HandleImport(ctx, []string{"Customer1", "123456-a", "50", "2021-01-21", "Content1", "Warehouse1"})
	})

	t.Run("rejects malformed quantity without touching storage", func(t *testing.T) {
		h.HandleImport(ctx, []string{"Customer1", "123456-a", "fifty", "2021-01-21", "Content1", "Warehouse1"})
	})

	t.Run("rejects wrong arity without touching storage", func(t *testing.T) {
		h.HandleImport(ctx, []string{"Customer1"})
	})
}

func TestHandleExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mock_server.NewMockStorage(ctrl)
	h := New(mockStorage)
	ctx := context.Background()

	mockStorage.EXPECT().
		RemoveFromOrder(ctx, "Customer1", "123456-a", 20,
			time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC), "111111").
		Return(nil)

	h.HandleExport(ctx, []string{"Customer1", "123456-a", "20", "111111", "2021-01-31"})
}

func TestHandleCharge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mock_server.NewMockStorage(ctrl)
	h := New(mockStorage)
	ctx := context.Background()

	mockStorage.EXPECT().
		RecordMonthlyCharge(ctx, "Customer1", "123456-a",
			time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2021, 2, 28, 0, 0, 0, 0, time.UTC), 50, "222222").
		Return(nil)

	h.HandleCharge(ctx, []string{"Customer1", "123456-a", "50", "222222", "2021-02-01", "2021-02-28"})
}

func TestHandleListOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mock_server.NewMockStorage(ctrl)
	h := New(mockStorage)
	ctx := context.Background()

	t.Run("active by default", func(t *testing.T) {
		mockStorage.EXPECT().
			ActiveOrderRows(ctx, "Customer1").
			Return([]ledger.Row{{InvoiceNumber: "123456-a", CurrentQuantity: 50}}, nil)

		h.HandleListOrders(ctx, []string{"Customer1"})
	})

	t.Run("completed on flag", func(t *testing.T) {
		mockStorage.EXPECT().
			CompletedOrderRows(ctx, "Customer1").
			Return(nil, nil)

		h.HandleListOrders(ctx, []string{"Customer1", "--completed"})
	})
}

func TestHandleDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mock_server.NewMockStorage(ctrl)
	h := New(mockStorage)
	ctx := context.Background()

	mockStorage.EXPECT().
		DeleteOrder(ctx, "Customer1", "123456-a").
		Return(nil)

	h.HandleDelete(ctx, []string{"Customer1", "123456-a"})
}
