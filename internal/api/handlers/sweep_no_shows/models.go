package sweep_no_shows

import (
	"time"

	"github.com/google/uuid"

	sweepNoShows "github.com/m04kA/SMC-BarberService/internal/usecase/sweep_no_shows"
)

// SweepResponse HTTP response model
type SweepResponse struct {
	CheckedAt string      `json:"checkedAt"`
	Marked    int         `json:"marked"`
	IDs       []uuid.UUID `json:"ids"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *sweepNoShows.Response) *SweepResponse {
	ids := resp.IDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return &SweepResponse{
		CheckedAt: resp.CheckedAt.Format(time.RFC3339),
		Marked:    resp.Marked,
		IDs:       ids,
	}
}
