package cancel_reservation

import (
	"context"

	cancelReservation "github.com/pacohlim/showroom-reservation/internal/usecase/cancel_reservation"
)

// CancelReservationUseCase интерфейс use case отмены брони
type CancelReservationUseCase interface {
	Execute(ctx context.Context, req *cancelReservation.Request) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
