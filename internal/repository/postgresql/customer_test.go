package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "gitlab.ozon.dev/pupkingeorgij/warehouse/internal/db/mocks"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/repository/postgresql"
)

// rowStub satisfies pgx.Row for single-value queries.
type rowStub struct {
	scan func(dest ...interface{}) error
}

func (r rowStub) Scan(dest ...interface{}) error {
	return r.scan(dest...)
}

func TestCustomerRepo_EnsureTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewCustomerRepo(mockDB)

		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq("Customer1")).Return(nil, nil)

		err := repo.EnsureTx(ctx, mockTx, "Customer1")
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewCustomerRepo(mockDB)

		expectedErr := errors.New("database error")
		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, expectedErr)

		err := repo.EnsureTx(ctx, mockTx, "Customer1")
		assert.Equal(t, expectedErr, err)
	})
}

func TestCustomerRepo_Exists(t *testing.T) {
	ctx := context.Background()

	t.Run("customer exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewCustomerRepo(mockDB)

		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("Customer1")).
			Return(rowStub{scan: func(dest ...interface{}) error {
				*dest[0].(*int) = 1
				return nil
			}})

		exists, err := repo.Exists(ctx, "Customer1")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("customer missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewCustomerRepo(mockDB)

		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("Ghost")).
			Return(rowStub{scan: func(dest ...interface{}) error {
				*dest[0].(*int) = 0
				return nil
			}})

		exists, err := repo.Exists(ctx, "Ghost")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("scan error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewCustomerRepo(mockDB)

		expectedErr := errors.New("scan error")
		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(rowStub{scan: func(dest ...interface{}) error { return expectedErr }})

		exists, err := repo.Exists(ctx, "Customer1")
		assert.Equal(t, expectedErr, err)
		assert.False(t, exists)
	})
}

func TestCustomerRepo_GetAll(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewCustomerRepo(mockDB)

	expected := []*repository.Customer{
		{Name: "Customer1", CreatedAt: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "Customer2", CreatedAt: time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
	mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dest *[]*repository.Customer, _ string, _ ...interface{}) error {
			*dest = expected
			return nil
		})

	customers, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, expected, customers)
}
