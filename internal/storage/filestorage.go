package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/ledger"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/metrics"
)

// FileStorage keeps the whole warehouse graph in memory and rewrites one JSON
// file after every successful mutation. The core ledger does all validation;
// a failed operation leaves both memory and file untouched.
type FileStorage struct {
	filePath  string
	mu        sync.Mutex
	warehouse *ledger.Warehouse
}

var _ Storage = (*FileStorage)(nil)

func NewFileStorage(filePath string) (*FileStorage, error) {
	fs := &FileStorage{filePath: filePath}
	if err := fs.load(); err != nil {
		return nil, err
	}
	return fs, nil
}

func (fs *FileStorage) load() error {
	file, err := os.Open(fs.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			fs.warehouse = ledger.NewWarehouse()
			return nil
		}
		return err
	}
	defer file.Close()

	var doc ledger.WarehouseDoc
	if err := json.NewDecoder(file).Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ledger.ErrCorruptFile, err)
	}

	warehouse, err := ledger.WarehouseFromDocument(doc)
	if err != nil {
		return err
	}
	fs.warehouse = warehouse
	return nil
}

func (fs *FileStorage) save() error {
	file, err := os.Create(fs.filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(fs.warehouse.ToDocument())
}

func (fs *FileStorage) ImportOrder(ctx context.Context, customerName, content string, importDate time.Time, invoiceNumber string, quantity int, storageLocation string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	_, lookupErr := fs.warehouse.Customer(customerName)
	customer := fs.warehouse.EnsureCustomer(customerName)
	if err := customer.ImportOrder(content, importDate, invoiceNumber, quantity, storageLocation); err != nil {
		// a rejected import must not leave a brand-new empty customer behind
		if lookupErr != nil {
			_ = fs.warehouse.DeleteCustomer(customerName)
		}
		return err
	}
	return fs.save()
}

func (fs *FileStorage) RemoveFromOrder(ctx context.Context, customerName, importInvoiceNumber string, removalQuantity int, exportDate time.Time, exportInvoiceNumber string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	customer, err := fs.warehouse.Customer(customerName)
	if err != nil {
		return err
	}
	if err := customer.RemoveFromOrder(importInvoiceNumber, removalQuantity, exportDate, exportInvoiceNumber); err != nil {
		return err
	}
	if _, stillActive := customer.ActiveOrder(importInvoiceNumber); !stillActive {
		metrics.OrdersCompletedTotal.Inc()
	}
	return fs.save()
}

func (fs *FileStorage) RecordMonthlyCharge(ctx context.Context, customerName, importInvoiceNumber string, startDate, endDate time.Time, quantity int, monthlyInvoiceNumber string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	customer, err := fs.warehouse.Customer(customerName)
	if err != nil {
		return err
	}
	if err := customer.RecordMonthlyCharge(importInvoiceNumber, startDate, endDate, quantity, monthlyInvoiceNumber); err != nil {
		return err
	}
	return fs.save()
}

func (fs *FileStorage) EditActiveOrder(ctx context.Context, customerName, importInvoiceNumber, content, storageLocation string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	customer, err := fs.warehouse.Customer(customerName)
	if err != nil {
		return err
	}
	if err := customer.EditActiveOrder(importInvoiceNumber, content, storageLocation); err != nil {
		return err
	}
	return fs.save()
}

func (fs *FileStorage) DeleteOrder(ctx context.Context, customerName, invoiceNumber string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	customer, err := fs.warehouse.Customer(customerName)
	if err != nil {
		return err
	}
	if err := customer.DeleteOrder(invoiceNumber); err != nil {
		return err
	}
	return fs.save()
}

func (fs *FileStorage) ActiveOrderRows(ctx context.Context, customerName string) ([]ledger.Row, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	customer, err := fs.warehouse.Customer(customerName)
	if err != nil {
		return nil, err
	}
	return customer.ActiveOrderRows(), nil
}

func (fs *FileStorage) CompletedOrderRows(ctx context.Context, customerName string) ([]ledger.Row, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	customer, err := fs.warehouse.Customer(customerName)
	if err != nil {
		return nil, err
	}
	return customer.CompletedOrderRows(), nil
}

func (fs *FileStorage) CustomerNames(ctx context.Context) ([]string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.warehouse.CustomerNames(), nil
}
