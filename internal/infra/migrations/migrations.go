// Package migrations применяет схему БД при старте сервиса.
// Все операторы идемпотентны, повторный запуск безопасен.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

// Частичный уникальный индекс на (дата, время) для статуса booked
// и есть защита слота: вставка брони выполняется одним запросом,
// конфликт индекса означает занятый слот.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS reservations (
		id UUID PRIMARY KEY,
		reserve_date DATE NOT NULL,
		reserve_time VARCHAR(5) NOT NULL,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		password TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'booked',
		channel TEXT NOT NULL DEFAULT 'web',
		utm_source TEXT,
		utm_medium TEXT,
		utm_campaign TEXT,
		land_address TEXT,
		notes TEXT,
		notified_at TIMESTAMPTZ,
		emailed_at TIMESTAMPTZ,
		reminded_d1_at TIMESTAMPTZ,
		reminded_d0_at TIMESTAMPTZ,
		notify_last_error TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS uq_reservations_booked_slot
		ON reservations (reserve_date, reserve_time)
		WHERE status = 'booked'`,

	`CREATE INDEX IF NOT EXISTS idx_reservations_credentials
		ON reservations (name, phone, password)`,

	`CREATE INDEX IF NOT EXISTS idx_reservations_date_status
		ON reservations (reserve_date, status)`,
}

// Apply последовательно выполняет все операторы схемы
func Apply(ctx context.Context, db *sql.DB) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrations: statement %d failed: %w", i+1, err)
		}
	}
	return nil
}
