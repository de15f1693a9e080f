package my_reservations

import (
	"context"

	"github.com/pacohlim/showroom-reservation/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	FindByCredentials(ctx context.Context, name, phone, password string, limit uint64) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
