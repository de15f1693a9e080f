package create_reservation

import (
	"context"

	"github.com/pacohlim/showroom-reservation/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// Notifier интерфейс диспетчера уведомлений
type Notifier interface {
	SendConfirmation(ctx context.Context, r *domain.Reservation) error
	SendAdminEmail(ctx context.Context, r *domain.Reservation) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
