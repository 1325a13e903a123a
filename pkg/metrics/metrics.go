package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec
	DBQueriesTotal     *prometheus.CounterVec

	BookingsCreatedTotal  *prometheus.CounterVec
	BookingsRejectedTotal *prometheus.CounterVec
	NoShowsMarkedTotal    prometheus.Counter
}

// New создает и регистрирует метрики в реестре по умолчанию
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections to the database",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		BookingsCreatedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of created appointments",
			ConstLabels: constLabels,
		}, []string{"channel"}),

		BookingsRejectedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_rejected_total",
			Help:        "Total number of declined booking attempts",
			ConstLabels: constLabels,
		}, []string{"channel", "reason"}),

		NoShowsMarkedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "no_shows_marked_total",
			Help:        "Total number of appointments reclassified as no-show",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.DBQueriesTotal,
		m.BookingsCreatedTotal,
		m.BookingsRejectedTotal,
		m.NoShowsMarkedTotal,
	)

	return m
}

// BookingCreated увеличивает счетчик созданных записей.
// Безопасен для вызова на nil (метрики выключены).
func (m *Metrics) BookingCreated(channel string) {
	if m == nil {
		return
	}
	m.BookingsCreatedTotal.WithLabelValues(channel).Inc()
}

// BookingRejected увеличивает счетчик отклоненных записей
func (m *Metrics) BookingRejected(channel, reason string) {
	if m == nil {
		return
	}
	m.BookingsRejectedTotal.WithLabelValues(channel, reason).Inc()
}

// NoShowsMarked увеличивает счетчик неявок
func (m *Metrics) NoShowsMarked(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.NoShowsMarkedTotal.Add(float64(n))
}
