package deletionlog

import (
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
