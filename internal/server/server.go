//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/kafka"
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

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type Server struct {
	storage      Storage
	userRepo     UserRepo
	logger       *zap.Logger
	server       *http.Server
	AuditManager *AuditManager
}

func New(storage Storage, userRepo UserRepo, producer kafka.Producer, auditTopic string, logger *zap.Logger) *Server {
	auditManager := NewAuditManager(producer, auditTopic, 2, 5, 500*time.Millisecond, logger)
	return &Server{
		storage:      storage,
		userRepo:     userRepo,
		logger:       logger,
		AuditManager: auditManager,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("http server shutdown completed")

	s.AuditManager.Shutdown(ctx)
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()
	router.Use(s.auditLogMiddleware)
	router.Use(s.basicAuthMiddleware)

	router.HandleFunc("/customers", s.handleListCustomers).Methods(http.MethodGet)
	router.HandleFunc("/customers/{name}/orders", s.handleImportOrder).Methods(http.MethodPost)
	router.HandleFunc("/customers/{name}/orders", s.handleListOrders).Methods(http.MethodGet)
	router.HandleFunc("/customers/{name}/orders/{invoice}/exports", s.handleExportFromOrder).Methods(http.MethodPost)
	router.HandleFunc("/customers/{name}/orders/{invoice}/charges", s.handleRecordMonthlyCharge).Methods(http.MethodPost)
	router.HandleFunc("/customers/{name}/orders/{invoice}", s.handleEditOrder).Methods(http.MethodPut)
	router.HandleFunc("/customers/{name}/orders/{invoice}", s.handleDeleteOrder).Methods(http.MethodDelete)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return router
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		valid, err := s.userRepo.ValidateUser(r.Context(), username, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps ledger failures onto HTTP statuses. Validation
// failures are the caller's problem, lookups map to 404, duplicate imports to
// 409, everything else is a server fault.
func (s *Server) respondDomainError(w http.ResponseWriter, operation string, err error) {
	var (
		orderNotFound    *ledger.OrderNotFoundError
		customerNotFound *ledger.CustomerNotFoundError
		alreadyExists    *ledger.OrderAlreadyExistsError
		exceedsMax       *ledger.QuantityExceedsMaxError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &orderNotFound), errors.As(err, &customerNotFound):
		status = http.StatusNotFound
	case errors.As(err, &alreadyExists):
		status = http.StatusConflict
	case errors.As(err, &exceedsMax),
		errors.Is(err, ledger.ErrQuantityNegative),
		errors.Is(err, ledger.ErrQuantityZero),
		errors.Is(err, ledger.ErrRemovalExceedsAvailability),
		errors.Is(err, ledger.ErrInvalidImportDate),
		errors.Is(err, ledger.ErrInvalidExportDate),
		errors.Is(err, ledger.ErrInvalidStartDate),
		errors.Is(err, ledger.ErrInvalidEndDate),
		errors.Is(err, ledger.ErrInvalidMonthRange):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("operation failed", zap.String("operation", operation), zap.Error(err))
	}
	respondError(w, status, err.Error())
}
