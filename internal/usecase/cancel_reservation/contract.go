package cancel_reservation

import "context"

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	CancelByCredentials(ctx context.Context, id, name, phone, password string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
