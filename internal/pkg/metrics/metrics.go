package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uap_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "uap_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Import pipeline metrics
var (
	ImportRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uap_import_rows_total",
		Help: "Bulk import rows by entity kind and outcome.",
	}, []string{"kind", "outcome"})

	MailEnqueuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uap_mail_enqueued_total",
		Help: "Credential and reset emails placed on the outbox queue.",
	})

	MailFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uap_mail_failed_total",
		Help: "Outbox emails that failed to send.",
	})
)
