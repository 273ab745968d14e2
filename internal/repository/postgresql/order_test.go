package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "gitlab.ozon.dev/pupkingeorgij/warehouse/internal/db/mocks"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/repository/postgresql"
)

func testOrder() *repository.Order {
	now := time.Date(2021, 3, 15, 12, 0, 0, 0, time.UTC)
	return &repository.Order{
		CustomerName:     "Customer1",
		InvoiceNumber:    "123456-a",
		Content:          "Content1",
		ImportDate:       time.Date(2021, 1, 21, 0, 0, 0, 0, time.UTC),
		OriginalQuantity: 50,
		CurrentQuantity:  50,
		StorageLocation:  "AL Warehouse1",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestOrderRepo_CreateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		order := testOrder()
		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(order.CustomerName),
			gomock.Eq(order.InvoiceNumber),
			gomock.Eq(order.Content),
			gomock.Eq(order.ImportDate),
			gomock.Eq(order.OriginalQuantity),
			gomock.Eq(order.CurrentQuantity),
			gomock.Eq(order.StorageLocation),
			gomock.Eq(order.Completed),
			gomock.Eq(order.CreatedAt),
			gomock.Eq(order.UpdatedAt),
		).Return(nil, nil)

		err := repo.CreateTx(ctx, mockTx, order)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		expectedErr := errors.New("database error")
		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.CreateTx(ctx, mockTx, testOrder())
		assert.Equal(t, expectedErr, err)
	})
}

func TestOrderRepo_GetByInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("order found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		expected := testOrder()
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("Customer1"), gomock.Eq("123456-a")).
			DoAndReturn(func(_ context.Context, dest *repository.Order, _ string, _ ...interface{}) error {
				*dest = *expected
				return nil
			})

		order, err := repo.GetByInvoice(ctx, "Customer1", "123456-a")
		assert.NoError(t, err)
		assert.Equal(t, expected, order)
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		order, err := repo.GetByInvoice(ctx, "Customer1", "missing")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, order)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		order, err := repo.GetByInvoice(ctx, "Customer1", "123456-a")
		assert.Equal(t, expectedErr, err)
		assert.Nil(t, order)
	})
}

func TestOrderRepo_GetByCustomer(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewOrderRepo(mockDB)

	expected := []*repository.Order{testOrder()}
	mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("Customer1"), gomock.Eq(false)).
		DoAndReturn(func(_ context.Context, dest *[]*repository.Order, _ string, _ ...interface{}) error {
			*dest = expected
			return nil
		})

	orders, err := repo.GetByCustomer(ctx, "Customer1", false)
	assert.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestOrderRepo_UpdateTx(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewOrderRepo(mockDB)

	order := testOrder()
	order.CurrentQuantity = 30

	mockTx.EXPECT().Exec(
		gomock.Any(),
		gomock.Any(),
		gomock.Eq(order.Content),
		gomock.Eq(order.CurrentQuantity),
		gomock.Eq(order.StorageLocation),
		gomock.Eq(order.Completed),
		gomock.Eq(order.UpdatedAt),
		gomock.Eq(order.CustomerName),
		gomock.Eq(order.InvoiceNumber),
	).Return(nil, nil)

	err := repo.UpdateTx(ctx, mockTx, order)
	assert.NoError(t, err)
}

func TestOrderRepo_DeleteTx(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewOrderRepo(mockDB)

	mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq("Customer1"), gomock.Eq("123456-a")).
		Return(nil, nil)

	err := repo.DeleteTx(ctx, mockTx, "Customer1", "123456-a")
	assert.NoError(t, err)
}
