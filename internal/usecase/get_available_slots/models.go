package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	Date time.Time // дата в часовом поясе барбершопа (без времени)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date  time.Time          // дата, на которую запрашивались слоты
	Open  bool               // принимает ли барбершоп самозапись в этот день
	Slots []types.TimeString // свободные слоты по возрастанию
}
