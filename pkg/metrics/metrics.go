// Package metrics Prometheus-метрики HTTP-слоя и базы данных
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор коллекторов сервиса.
// Все метрики несут метку service, значение которой передают вызывающие.
type Metrics struct {
	serviceUp           *prometheus.GaugeVec
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	dbQueriesTotal      *prometheus.CounterVec
	dbQueryDuration     *prometheus.HistogramVec
	dbConnectionsOpen   *prometheus.GaugeVec
	dbConnectionsInUse  *prometheus.GaugeVec
	dbConnectionsIdle   *prometheus.GaugeVec
}

// New регистрирует коллекторы в реестре по умолчанию
func New(service string) *Metrics {
	return NewWith(service, prometheus.DefaultRegisterer)
}

// NewWith регистрирует коллекторы в переданном реестре (для тестов)
func NewWith(service string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		serviceUp: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "service_up",
			Help: "Set to 1 while the service is running",
		}, []string{"service"}),
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of handled HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		dbQueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "status"}),
		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"service", "operation"}),
		dbConnectionsOpen: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Open connections in the pool",
		}, []string{"service"}),
		dbConnectionsInUse: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Connections currently in use",
		}, []string{"service"}),
		dbConnectionsIdle: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Idle connections in the pool",
		}, []string{"service"}),
	}

	m.serviceUp.WithLabelValues(service).Set(1)

	return m
}

// RecordHTTPRequest записывает результат обработки HTTP-запроса
func (m *Metrics) RecordHTTPRequest(service, method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(service, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(service, method, path).Observe(duration.Seconds())
}

// RecordDBQuery записывает результат запроса к БД
func (m *Metrics) RecordDBQuery(service, operation string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueriesTotal.WithLabelValues(service, operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

// RecordDBStats записывает состояние connection pool
func (m *Metrics) RecordDBStats(service string, stats sql.DBStats) {
	m.dbConnectionsOpen.WithLabelValues(service).Set(float64(stats.OpenConnections))
	m.dbConnectionsInUse.WithLabelValues(service).Set(float64(stats.InUse))
	m.dbConnectionsIdle.WithLabelValues(service).Set(float64(stats.Idle))
}
