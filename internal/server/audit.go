package server

import (
	"time"
)

// AuditLogEntry is one ledger operation as seen at the HTTP boundary.
type AuditLogEntry struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Handler       string    `json:"handler"`
	Method        string    `json:"method"`
	Path          string    `json:"path"`
	StatusCode    int       `json:"status_code"`
	UserID        string    `json:"user_id,omitempty"`
	CustomerName  string    `json:"customer_name,omitempty"`
	InvoiceNumber string    `json:"invoice_number,omitempty"`
	Request       string    `json:"request,omitempty"`
	Response      string    `json:"response,omitempty"`
}
