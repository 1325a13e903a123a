package deletionlogs

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// DeletionLogRepository интерфейс журнала удалений
type DeletionLogRepository interface {
	List(ctx context.Context) ([]*domain.DeletionLog, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
