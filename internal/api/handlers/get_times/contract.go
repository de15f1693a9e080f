package get_times

import (
	"context"

	getTimes "github.com/pacohlim/showroom-reservation/internal/usecase/get_times"
)

type GetTimesUseCase interface {
	Execute(ctx context.Context, req *getTimes.Request) (*getTimes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
