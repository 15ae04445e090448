// Package monitoring exposes the Prometheus instrumentation for the API.
// Metrics are registered at init via promauto and served on /metrics.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DocumentsSaved counts create/update operations by document type.
var DocumentsSaved = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "receiptpro",
	Subsystem: "documents",
	Name:      "saved_total",
	Help:      "Total documents created or updated, by type.",
}, []string{"type"})

// DocumentsDeleted counts deletions by document type.
var DocumentsDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "receiptpro",
	Subsystem: "documents",
	Name:      "deleted_total",
	Help:      "Total documents deleted, by type.",
}, []string{"type"})

// PDFExports counts finished exports by pipeline path.
var PDFExports = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "receiptpro",
	Subsystem: "pdf",
	Name:      "exports_total",
	Help:      "Total PDF exports, by path (primary or fallback).",
}, []string{"path"})

// PDFExportPages observes the page count of finished exports.
var PDFExportPages = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "receiptpro",
	Subsystem: "pdf",
	Name:      "export_pages",
	Help:      "Pages per exported PDF.",
	Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
})

// EmailsQueued counts email jobs accepted for delivery.
var EmailsQueued = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "receiptpro",
	Subsystem: "email",
	Name:      "queued_total",
	Help:      "Total document emails enqueued for delivery.",
})

// EmailsFailed counts email jobs that ended in the DLQ.
var EmailsFailed = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "receiptpro",
	Subsystem: "email",
	Name:      "failed_total",
	Help:      "Total document emails that failed delivery.",
})
