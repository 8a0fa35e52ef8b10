package bot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics структура для метрик Prometheus
type Metrics struct {
	MessagesProcessed    prometheus.Counter
	CommandsProcessed    *prometheus.CounterVec
	BookingsTotal        *prometheus.CounterVec
	CancellationsTotal   prometheus.Counter
	ErrorsTotal          prometheus.Counter
	UpdateProcessingTime prometheus.Histogram
}

// NewMetrics создает новые метрики
func NewMetrics() *Metrics {
	return &Metrics{
		MessagesProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hotelier_bot_messages_processed_total",
			Help: "Total number of processed messages",
		}),

		CommandsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hotelier_bot_commands_processed_total",
			Help: "Total number of processed commands",
		}, []string{"command"}),

		BookingsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hotelier_bot_bookings_total",
			Help: "Total number of booking attempts by outcome",
		}, []string{"outcome"}),

		CancellationsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hotelier_bot_cancellations_total",
			Help: "Total number of cancelled bookings",
		}),

		ErrorsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hotelier_bot_errors_total",
			Help: "Total number of errors",
		}),

		UpdateProcessingTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "hotelier_bot_update_processing_time_seconds",
			Help:    "Time spent processing updates",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
