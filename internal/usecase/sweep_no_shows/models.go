package sweep_no_shows

import (
	"time"

	"github.com/google/uuid"
)

// Response результат проверки неявок
type Response struct {
	CheckedAt time.Time
	Marked    int         // сколько записей реально переведено в NO_SHOW
	IDs       []uuid.UUID // кандидаты, найденные движком
}
