package ledger

// Row is one order flattened for tabular display.
type Row struct {
	CustomerName         string `json:"customerName"`
	InvoiceNumber        string `json:"invoiceNumber"`
	CurrentQuantity      int    `json:"currentQuantity"`
	Content              string `json:"content"`
	ImportDate           string `json:"importDate"`
	StorageLocation      string `json:"storageLocation"`
	ExportHistory        string `json:"exportHistory"`
	MonthlyChargeHistory string `json:"monthlyChargeHistory"`
}
