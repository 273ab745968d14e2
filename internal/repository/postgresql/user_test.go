package postgresql_test

import (
	"context"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	mock_database "gitlab.ozon.dev/pupkingeorgij/warehouse/internal/db/mocks"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/repository/postgresql"
)

func TestUserRepo_CreateUser(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewUserRepo(mockDB)

	mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq("admin"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, args ...interface{}) (pgconn.CommandTag, error) {
			hashed, ok := args[1].(string)
			require.True(t, ok)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("secret")))
			return nil, nil
		})

	err := repo.CreateUser(ctx, "admin", "secret")
	assert.NoError(t, err)
}

func TestUserRepo_ValidateUser(t *testing.T) {
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("valid password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("admin")).
			Return(rowStub{scan: func(dest ...interface{}) error {
				*dest[0].(*string) = string(hashed)
				return nil
			}})

		valid, err := repo.ValidateUser(ctx, "admin", "secret")
		assert.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("admin")).
			Return(rowStub{scan: func(dest ...interface{}) error {
				*dest[0].(*string) = string(hashed)
				return nil
			}})

		valid, err := repo.ValidateUser(ctx, "admin", "wrong")
		assert.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("ghost")).
			Return(rowStub{scan: func(dest ...interface{}) error {
				return assert.AnError
			}})

		valid, err := repo.ValidateUser(ctx, "ghost", "secret")
		assert.Error(t, err)
		assert.False(t, valid)
	})
}
