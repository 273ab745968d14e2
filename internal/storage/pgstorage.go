package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/cache"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/ledger"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/repository"
)

// PostgresStorage keeps the ledger in relational form: one row per order plus
// append-only label rows. Every operation rebuilds the affected order through
// the core ledger so the domain rules stay in one place, then persists the
// outcome in a single transaction.
type PostgresStorage struct {
	db           db.DB
	customerRepo CustomerRepository
	orderRepo    OrderRepository
	labelRepo    LabelRepository
	rowCache     *cache.RowCache

	timeNow func() time.Time
}

var _ Storage = (*PostgresStorage)(nil)

func NewPostgresStorage(database db.DB, customerRepo CustomerRepository, orderRepo OrderRepository, labelRepo LabelRepository) *PostgresStorage {
	return &PostgresStorage{
		db:           database,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		labelRepo:    labelRepo,
		rowCache:     cache.NewRowCache(),
		timeNow:      time.Now,
	}
}

func (s *PostgresStorage) ImportOrder(ctx context.Context, customerName, content string, importDate time.Time, invoiceNumber string, quantity int, storageLocation string) error {
	order, err := ledger.NewOrder(content, importDate, invoiceNumber, quantity, storageLocation)
	if err != nil {
		return err
	}

	_, err = s.orderRepo.GetByInvoice(ctx, customerName, invoiceNumber)
	if err == nil {
		return &ledger.OrderAlreadyExistsError{InvoiceNumber: invoiceNumber}
	}
	if !errors.Is(err, repository.ErrObjectNotFound) {
		return fmt.Errorf("failed to check order existence: %w", err)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := s.customerRepo.EnsureTx(ctx, tx, customerName); err != nil {
		return fmt.Errorf("failed to ensure customer: %w", err)
	}

	now := s.timeNow().UTC()
	row := &repository.Order{
		CustomerName:     customerName,
		InvoiceNumber:    order.InvoiceNumber(),
		Content:          order.Content(),
		ImportDate:       order.ImportDate(),
		OriginalQuantity: order.OriginalQuantity(),
		CurrentQuantity:  order.CurrentQuantity(),
		StorageLocation:  order.StorageLocation(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.orderRepo.CreateTx(ctx, tx, row); err != nil {
		return fmt.Errorf("failed to add order: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	s.rowCache.Invalidate(customerName)
	return nil
}

func (s *PostgresStorage) RemoveFromOrder(ctx context.Context, customerName, importInvoiceNumber string, removalQuantity int, exportDate time.Time, exportInvoiceNumber string) error {
	row, order, err := s.loadActiveOrder(ctx, customerName, importInvoiceNumber)
	if err != nil {
		return err
	}

	if err := order.Remove(removalQuantity, exportInvoiceNumber, exportDate); err != nil {
		return err
	}
	exports := order.Exports()
	exported := exports[len(exports)-1]

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	row.CurrentQuantity = order.CurrentQuantity()
	row.Completed = order.CurrentQuantity() == 0
	row.UpdatedAt = s.timeNow().UTC()
	if err := s.orderRepo.UpdateTx(ctx, tx, row); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	label := &repository.ExportLabel{
		CustomerName:  customerName,
		OrderInvoice:  importInvoiceNumber,
		Quantity:      exported.Quantity,
		InvoiceNumber: exported.InvoiceNumber,
		ExportDate:    exported.ExportDate,
	}
	if err := s.labelRepo.CreateExportTx(ctx, tx, label); err != nil {
		return fmt.Errorf("failed to add export label: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	if row.Completed {
		metrics.OrdersCompletedTotal.Inc()
	}
	s.rowCache.Invalidate(customerName)
	return nil
}

func (s *PostgresStorage) RecordMonthlyCharge(ctx context.Context, customerName, importInvoiceNumber string, startDate, endDate time.Time, quantity int, monthlyInvoiceNumber string) error {
	row, order, err := s.loadActiveOrder(ctx, customerName, importInvoiceNumber)
	if err != nil {
		return err
	}

	if err := order.AddMonthlyChargeLabel(quantity, monthlyInvoiceNumber, startDate, endDate); err != nil {
		return err
	}
	charges := order.MonthlyChargeLabels()
	charged := charges[len(charges)-1]

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	label := &repository.MonthlyChargeLabel{
		CustomerName:  customerName,
		OrderInvoice:  row.InvoiceNumber,
		Quantity:      charged.Quantity,
		InvoiceNumber: charged.InvoiceNumber,
		StartDate:     charged.StartDate,
		EndDate:       charged.EndDate,
	}
	if err := s.labelRepo.CreateMonthlyChargeTx(ctx, tx, label); err != nil {
		return fmt.Errorf("failed to add monthly charge label: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	s.rowCache.Invalidate(customerName)
	return nil
}

func (s *PostgresStorage) EditActiveOrder(ctx context.Context, customerName, importInvoiceNumber, content, storageLocation string) error {
	row, order, err := s.loadActiveOrder(ctx, customerName, importInvoiceNumber)
	if err != nil {
		return err
	}

	order.EditContentAndLocation(content, storageLocation)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	row.Content = order.Content()
	row.StorageLocation = order.StorageLocation()
	row.UpdatedAt = s.timeNow().UTC()
	if err := s.orderRepo.UpdateTx(ctx, tx, row); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	s.rowCache.Invalidate(customerName)
	return nil
}

func (s *PostgresStorage) DeleteOrder(ctx context.Context, customerName, invoiceNumber string) error {
	_, err := s.orderRepo.GetByInvoice(ctx, customerName, invoiceNumber)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return &ledger.OrderNotFoundError{InvoiceNumber: invoiceNumber}
		}
		return fmt.Errorf("failed to get order: %w", err)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := s.labelRepo.DeleteByOrderTx(ctx, tx, customerName, invoiceNumber); err != nil {
		return fmt.Errorf("failed to delete order labels: %w", err)
	}
	if err := s.orderRepo.DeleteTx(ctx, tx, customerName, invoiceNumber); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	s.rowCache.Invalidate(customerName)
	return nil
}

func (s *PostgresStorage) ActiveOrderRows(ctx context.Context, customerName string) ([]ledger.Row, error) {
	return s.orderRows(ctx, customerName, false)
}

func (s *PostgresStorage) CompletedOrderRows(ctx context.Context, customerName string) ([]ledger.Row, error) {
	return s.orderRows(ctx, customerName, true)
}

func (s *PostgresStorage) CustomerNames(ctx context.Context) ([]string, error) {
	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}
	names := make([]string, len(customers))
	for i, c := range customers {
		names[i] = c.Name
	}
	return names, nil
}

func (s *PostgresStorage) orderRows(ctx context.Context, customerName string, completed bool) ([]ledger.Row, error) {
	if rows, ok := s.rowCache.Get(customerName, completed); ok {
		return rows, nil
	}

	exists, err := s.customerRepo.Exists(ctx, customerName)
	if err != nil {
		return nil, fmt.Errorf("failed to check customer existence: %w", err)
	}
	if !exists {
		return nil, &ledger.CustomerNotFoundError{Name: customerName}
	}

	orderRows, err := s.orderRepo.GetByCustomer(ctx, customerName, completed)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	doc := ledger.CustomerDoc{Name: customerName}
	for _, row := range orderRows {
		orderDoc, err := s.orderDoc(ctx, row)
		if err != nil {
			return nil, err
		}
		if completed {
			doc.CompleteOrders = append(doc.CompleteOrders, orderDoc)
		} else {
			doc.ActiveOrders = append(doc.ActiveOrders, orderDoc)
		}
	}

	customer, err := ledger.CustomerFromDocument(doc)
	if err != nil {
		return nil, err
	}

	var rows []ledger.Row
	if completed {
		rows = customer.CompletedOrderRows()
	} else {
		rows = customer.ActiveOrderRows()
	}
	s.rowCache.Set(customerName, completed, rows)
	return rows, nil
}

// loadActiveOrder rebuilds an active order through the core ledger. A
// completed order is not eligible for further mutation and reads as absent.
func (s *PostgresStorage) loadActiveOrder(ctx context.Context, customerName, invoiceNumber string) (*repository.Order, *ledger.Order, error) {
	row, err := s.orderRepo.GetByInvoice(ctx, customerName, invoiceNumber)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, nil, &ledger.OrderNotFoundError{InvoiceNumber: invoiceNumber}
		}
		return nil, nil, fmt.Errorf("failed to get order: %w", err)
	}
	if row.Completed {
		return nil, nil, &ledger.OrderNotFoundError{InvoiceNumber: invoiceNumber}
	}

	doc, err := s.orderDoc(ctx, row)
	if err != nil {
		return nil, nil, err
	}
	order, err := ledger.OrderFromDocument(doc)
	if err != nil {
		return nil, nil, err
	}
	return row, order, nil
}

func (s *PostgresStorage) orderDoc(ctx context.Context, row *repository.Order) (ledger.OrderDoc, error) {
	doc := ledger.OrderDoc{
		Content:          row.Content,
		ImportDate:       row.ImportDate.UTC().Format("2006-01-02"),
		InvoiceNumber:    row.InvoiceNumber,
		OriginalQuantity: row.OriginalQuantity,
		CurrentQuantity:  row.CurrentQuantity,
		StorageLocation:  row.StorageLocation,
	}

	exports, err := s.labelRepo.GetExportsByOrder(ctx, row.CustomerName, row.InvoiceNumber)
	if err != nil {
		return ledger.OrderDoc{}, fmt.Errorf("failed to get export labels: %w", err)
	}
	for _, e := range exports {
		doc.Exports = append(doc.Exports, ledger.ExportDoc{
			Quantity:      e.Quantity,
			InvoiceNumber: e.InvoiceNumber,
			ExportDate:    e.ExportDate.UTC().Format("2006-01-02"),
		})
	}

	charges, err := s.labelRepo.GetMonthlyChargesByOrder(ctx, row.CustomerName, row.InvoiceNumber)
	if err != nil {
		return ledger.OrderDoc{}, fmt.Errorf("failed to get monthly charge labels: %w", err)
	}
	for _, m := range charges {
		doc.MonthlyChargeLabels = append(doc.MonthlyChargeLabels, ledger.MonthlyDoc{
			Quantity:      m.Quantity,
			InvoiceNumber: m.InvoiceNumber,
			StartDate:     m.StartDate.UTC().Format("2006-01-02"),
			EndDate:       m.EndDate.UTC().Format("2006-01-02"),
		})
	}
	return doc, nil
}
