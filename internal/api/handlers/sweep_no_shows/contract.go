package sweep_no_shows

import (
	"context"

	sweepNoShows "github.com/m04kA/SMC-BarberService/internal/usecase/sweep_no_shows"
)

type UseCase interface {
	Execute(ctx context.Context) (*sweepNoShows.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
