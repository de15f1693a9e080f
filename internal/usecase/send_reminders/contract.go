package send_reminders

import (
	"context"
	"time"

	"github.com/pacohlim/showroom-reservation/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	FindPendingReminders(ctx context.Context, date time.Time, kind domain.ReminderKind, limit uint64) ([]*domain.Reservation, error)
}

// Notifier интерфейс диспетчера уведомлений
type Notifier interface {
	SendReminder(ctx context.Context, r *domain.Reservation, kind domain.ReminderKind) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
