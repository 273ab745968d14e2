package postgresql

import (
	"context"

	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/storage"
)

type CustomerRepo struct {
	db db.DB
}

func NewCustomerRepo(db db.DB) storage.CustomerRepository {
	return &CustomerRepo{db: db}
}

func (r *CustomerRepo) EnsureTx(ctx context.Context, tx db.Tx, name string) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO customers (name, created_at) VALUES ($1, now())
        ON CONFLICT (name) DO NOTHING
    `, name)
	return err
}

func (r *CustomerRepo) Exists(ctx context.Context, name string) (bool, error) {
	var count int
	err := r.db.ExecQueryRow(ctx, "SELECT COUNT(*) FROM customers WHERE name = $1", name).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CustomerRepo) GetAll(ctx context.Context) ([]*repository.Customer, error) {
	var customers []*repository.Customer
	err := r.db.Select(ctx, &customers, "SELECT * FROM customers ORDER BY created_at ASC")
	return customers, err
}
