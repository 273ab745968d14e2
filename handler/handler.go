package handler

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/ledger"
)

type Storage interface {
	ImportOrder(ctx context.Context, customerName, content string, importDate time.Time, invoiceNumber string, quantity int, storageLocation string) error
	RemoveFromOrder(ctx context.Context, customerName, importInvoiceNumber string, removalQuantity int, exportDate time.Time, exportInvoiceNumber string) error
	RecordMonthlyCharge(ctx context.Context, customerName, importInvoiceNumber string, startDate, endDate time.Time, quantity int, monthlyInvoiceNumber string) error
	EditActiveOrder(ctx context.Context, customerName, importInvoiceNumber, content, storageLocation string) error
	DeleteOrder(ctx context.Context, customerName, invoiceNumber string) error
	ActiveOrderRows(ctx context.Context, customerName string) ([]ledger.Row, error)
	CompletedOrderRows(ctx context.Context, customerName string) ([]ledger.Row, error)
	CustomerNames(ctx context.Context) ([]string, error)
}

type Handler struct {
	storage Storage
}

func New(storage Storage) *Handler {
	return &Handler{storage: storage}
}

func (h *Handler) HandleHelp() {
	fmt.Println(`Available commands:
	import <customer> <invoice> <quantity> <YYYY-MM-DD> <content> <location> - Import order
	export <customer> <orderInvoice> <quantity> <exportInvoice> <YYYY-MM-DD> - Export goods from order
	charge <customer> <orderInvoice> <quantity> <chargeInvoice> <start YYYY-MM-DD> <end YYYY-MM-DD> - Record monthly charge
	edit <customer> <orderInvoice> <content> <location> - Edit active order
	delete <customer> <orderInvoice> - Delete order
	list-orders <customer> [--completed] - List orders
	customers - List customers
	exit - Exit program`)
}

func (h *Handler) HandleImport(ctx context.Context, args []string) {
	if len(args) != 6 {
		fmt.Println("Usage: import <customer> <invoice> <quantity> <YYYY-MM-DD> <content> <location>")
		return
	}

	quantity, err := strconv.Atoi(args[2])
	if err != nil {
		fmt.Println("Invalid quantity")
		return
	}

	importDate, err := time.ParseInLocation("2006-01-02", args[3], time.UTC)
	if err != nil {
		fmt.Println("Invalid date format. Use YYYY-MM-DD")
		return
	}

	if err := h.storage.ImportOrder(ctx, args[0], args[4], importDate, args[1], quantity, args[5]); err != nil {
		fmt.Println("Error:", err)
	} else {
		fmt.Println("Order imported successfully")
	}
}

func (h *Handler) HandleExport(ctx context.Context, args []string) {
	if len(args) != 5 {
		fmt.Println("Usage: export <customer> <orderInvoice> <quantity> <exportInvoice> <YYYY-MM-DD>")
		return
	}

	quantity, err := strconv.Atoi(args[2])
	if err != nil {
		fmt.Println("Invalid quantity")
		return
	}

	exportDate, err := time.ParseInLocation("2006-01-02", args[4], time.UTC)
	if err != nil {
		fmt.Println("Invalid date format. Use YYYY-MM-DD")
		return
	}

	if err := h.storage.RemoveFromOrder(ctx, args[0], args[1], quantity, exportDate, args[3]); err != nil {
		fmt.Println("Error:", err)
	} else {
		fmt.Println("Export recorded successfully")
	}
}

func (h *Handler) HandleCharge(ctx context.Context, args []string) {
	if len(args) != 6 {
		fmt.Println("Usage: charge <customer> <orderInvoice> <quantity> <chargeInvoice> <start> <end>")
		return
	}

	quantity, err := strconv.Atoi(args[2])
	if err != nil {
		fmt.Println("Invalid quantity")
		return
	}

	startDate, err := time.ParseInLocation("2006-01-02", args[4], time.UTC)
	if err != nil {
		fmt.Println("Invalid start date format. Use YYYY-MM-DD")
		return
	}

	endDate, err := time.ParseInLocation("2006-01-02", args[5], time.UTC)
	if err != nil {
		fmt.Println("Invalid end date format. Use YYYY-MM-DD")
		return
	}

	if err := h.storage.RecordMonthlyCharge(ctx, args[0], args[1], startDate, endDate, quantity, args[3]); err != nil {
		fmt.Println("Error:", err)
	} else {
		fmt.Println("Monthly charge recorded successfully")
	}
}

func (h *Handler) HandleEdit(ctx context.Context, args []string) {
	if len(args) != 4 {
		fmt.Println("Usage: edit <customer> <orderInvoice> <content> <location>")
		return
	}

	if err := h.storage.EditActiveOrder(ctx, args[0], args[1], args[2], args[3]); err != nil {
		fmt.Println("Error:", err)
	} else {
		fmt.Println("Order updated successfully")
	}
}

func (h *Handler) HandleDelete(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: delete <customer> <orderInvoice>")
		return
	}

	if err := h.storage.DeleteOrder(ctx, args[0], args[1]); err != nil {
		fmt.Println("Error:", err)
	} else {
		fmt.Println("Order deleted successfully")
	}
}

func (h *Handler) HandleListOrders(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: list-orders <customer> [--completed]")
		return
	}

	customerName := args[0]
	completed := false
	for _, arg := range args[1:] {
		if arg == "--completed" {
			completed = true
		}
	}

	var (
		rows []ledger.Row
		err  error
	)
	if completed {
		rows, err = h.storage.CompletedOrderRows(ctx, customerName)
	} else {
		rows, err = h.storage.ActiveOrderRows(ctx, customerName)
	}
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if len(rows) == 0 {
		fmt.Println("No orders found")
		return
	}

	fmt.Println("Orders:")
	for _, row := range rows {
		fmt.Printf("- %s | Qty: %d | Content: %s | Imported: %s | Location: %s\n",
			row.InvoiceNumber, row.CurrentQuantity, row.Content, row.ImportDate, row.StorageLocation)
		if row.ExportHistory != "" {
			fmt.Printf("    exports: %s\n", row.ExportHistory)
		}
		if row.MonthlyChargeHistory != "" {
			fmt.Printf("    charges: %s\n", row.MonthlyChargeHistory)
		}
	}
}

func (h *Handler) HandleCustomers(ctx context.Context) {
	names, err := h.storage.CustomerNames(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if len(names) == 0 {
		fmt.Println("No customers found")
		return
	}

	fmt.Println("Customers:")
	for _, name := range names {
		fmt.Println("-", name)
	}
}
