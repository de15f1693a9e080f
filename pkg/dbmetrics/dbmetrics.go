// Package dbmetrics обертка над *sql.DB, записывающая метрики каждого запроса
package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/pacohlim/showroom-reservation/pkg/metrics"
)

// poolStatsInterval период фонового съема статистики connection pool
const poolStatsInterval = 15 * time.Second

// DBExecutor общий интерфейс выполнения запросов.
// Ему удовлетворяют *sql.DB и обертка DB, поэтому репозитории
// работают одинаково с метриками и без них.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DB обертка базы данных со сбором метрик
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	service string
}

// Wrap оборачивает соединение сборщиком метрик запросов
func Wrap(db *sql.DB, m *metrics.Metrics, service string) *DB {
	return &DB{db: db, metrics: m, service: service}
}

// WrapWithDefault дополнительно запускает фоновый сбор статистики
// connection pool, который работает до закрытия канала stop.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, service string, stop <-chan struct{}) *DB {
	wrapped := Wrap(db, m, service)
	go wrapped.collectPoolStats(stop)
	return wrapped
}

func (d *DB) collectPoolStats(stop <-chan struct{}) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			d.metrics.RecordDBStats(d.service, d.db.Stats())
		}
	}
}

// ExecContext выполняет запрос без выборки строк
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.RecordDBQuery(d.service, operation(query), err, time.Since(start))
	return result, err
}

// QueryContext выполняет запрос с выборкой строк
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.RecordDBQuery(d.service, operation(query), err, time.Since(start))
	return rows, err
}

// QueryRowContext выполняет запрос одной строки.
// Ошибка выполнения проявится только при Scan, поэтому
// здесь фиксируется только длительность.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.RecordDBQuery(d.service, operation(query), nil, time.Since(start))
	return row
}

// operation извлекает SQL-глагол запроса для метки operation
func operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
