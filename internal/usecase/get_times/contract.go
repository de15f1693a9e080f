package get_times

import (
	"context"
	"time"

	"github.com/pacohlim/showroom-reservation/pkg/types"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	ClosedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
