package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersImportedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "warehouse_orders_imported_total",
		Help: "Total number of orders successfully imported.",
	})

	ExportsRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "warehouse_exports_recorded_total",
		Help: "Total number of export labels successfully recorded.",
	})

	MonthlyChargesRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "warehouse_monthly_charges_recorded_total",
		Help: "Total number of monthly charge labels successfully recorded.",
	})

	OrdersCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "warehouse_orders_completed_total",
		Help: "Total number of orders fully exported and moved to history.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warehouse_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	RowCacheEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "warehouse_row_cache_entries",
		Help: "Current number of row slices held in the order row cache.",
	})
)
