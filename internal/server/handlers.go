package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/ledger"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/metrics"
)

const dateLayout = "2006-01-02"

func parseDateField(w http.ResponseWriter, value, field string) (time.Time, bool) {
	date, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid "+field+". Use YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}

func (s *Server) handleImportOrder(w http.ResponseWriter, r *http.Request) {
	customerName := mux.Vars(r)["name"]

	var req struct {
		Content         string `json:"content"`
		ImportDate      string `json:"importDate"`
		InvoiceNumber   string `json:"invoiceNumber"`
		Quantity        int    `json:"quantity"`
		StorageLocation string `json:"storageLocation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	importDate, ok := parseDateField(w, req.ImportDate, "importDate")
	if !ok {
		return
	}

	err := s.storage.ImportOrder(r.Context(), customerName, req.Content, importDate, req.InvoiceNumber, req.Quantity, req.StorageLocation)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("import_order").Inc()
		s.respondDomainError(w, "import_order", err)
		return
	}

	metrics.OrdersImportedTotal.Inc()
	respondJSON(w, http.StatusCreated, map[string]string{
		"message":       "Order imported successfully",
		"invoiceNumber": req.InvoiceNumber,
	})
}

func (s *Server) handleExportFromOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerName, invoiceNumber := vars["name"], vars["invoice"]

	var req struct {
		Quantity      int    `json:"quantity"`
		InvoiceNumber string `json:"invoiceNumber"`
		ExportDate    string `json:"exportDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	exportDate, ok := parseDateField(w, req.ExportDate, "exportDate")
	if !ok {
		return
	}

	err := s.storage.RemoveFromOrder(r.Context(), customerName, invoiceNumber, req.Quantity, exportDate, req.InvoiceNumber)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("export_from_order").Inc()
		s.respondDomainError(w, "export_from_order", err)
		return
	}

	metrics.ExportsRecordedTotal.Inc()
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Export recorded successfully",
	})
}

func (s *Server) handleRecordMonthlyCharge(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerName, invoiceNumber := vars["name"], vars["invoice"]

	var req struct {
		Quantity      int    `json:"quantity"`
		InvoiceNumber string `json:"invoiceNumber"`
		StartDate     string `json:"startDate"`
		EndDate       string `json:"endDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	startDate, ok := parseDateField(w, req.StartDate, "startDate")
	if !ok {
		return
	}
	endDate, ok := parseDateField(w, req.EndDate, "endDate")
	if !ok {
		return
	}

	err := s.storage.RecordMonthlyCharge(r.Context(), customerName, invoiceNumber, startDate, endDate, req.Quantity, req.InvoiceNumber)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("record_monthly_charge").Inc()
		s.respondDomainError(w, "record_monthly_charge", err)
		return
	}

	metrics.MonthlyChargesRecordedTotal.Inc()
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Monthly charge recorded successfully",
	})
}

func (s *Server) handleEditOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerName, invoiceNumber := vars["name"], vars["invoice"]

	var req struct {
		Content         string `json:"content"`
		StorageLocation string `json:"storageLocation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := s.storage.EditActiveOrder(r.Context(), customerName, invoiceNumber, req.Content, req.StorageLocation)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("edit_order").Inc()
		s.respondDomainError(w, "edit_order", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Order updated successfully",
	})
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerName, invoiceNumber := vars["name"], vars["invoice"]

	err := s.storage.DeleteOrder(r.Context(), customerName, invoiceNumber)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("delete_order").Inc()
		s.respondDomainError(w, "delete_order", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Order deleted successfully",
	})
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	customerName := mux.Vars(r)["name"]

	var (
		rows []ledger.Row
		err  error
	)
	if r.URL.Query().Get("completed") == "true" {
		rows, err = s.storage.CompletedOrderRows(r.Context(), customerName)
	} else {
		rows, err = s.storage.ActiveOrderRows(r.Context(), customerName)
	}
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("list_orders").Inc()
		s.respondDomainError(w, "list_orders", err)
		return
	}

	respondJSON(w, http.StatusOK, rows)
}

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	names, err := s.storage.CustomerNames(r.Context())
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("list_customers").Inc()
		s.respondDomainError(w, "list_customers", err)
		return
	}

	respondJSON(w, http.StatusOK, names)
}
