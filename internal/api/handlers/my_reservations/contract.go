package my_reservations

import (
	"context"

	myReservations "github.com/pacohlim/showroom-reservation/internal/usecase/my_reservations"
)

// MyReservationsUseCase интерфейс use case поиска броней по учётным данным
type MyReservationsUseCase interface {
	Execute(ctx context.Context, req *myReservations.Request) (*myReservations.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
