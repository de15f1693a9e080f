package get_calendar

import (
	"context"
	"time"

	"github.com/pacohlim/showroom-reservation/pkg/types"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	ClosedTimesByDateRange(ctx context.Context, from, to time.Time) (map[string][]types.TimeString, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
