package server

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := AuditLogEntry{
			ID:        uuid.NewString(),
			Timestamp: time.Now().UTC(),
			Method:    r.Method,
			Path:      r.URL.Path,
		}

		if username, _, ok := r.BasicAuth(); ok {
			entry.UserID = username
		}

		vars := mux.Vars(r)
		entry.CustomerName = vars["name"]
		entry.InvoiceNumber = vars["invoice"]

		if r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)
		}

		wrapper := newResponseWriterWrapper(w)
		next.ServeHTTP(wrapper, r)

		entry.StatusCode = wrapper.statusCode
		entry.Response = wrapper.buffer.String()
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				entry.Handler = r.Method + " " + tpl
			}
		}

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}
