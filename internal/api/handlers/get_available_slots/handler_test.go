package get_available_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-BarberService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

var brt = time.FixedZone("BRT", -3*60*60)

type fakeUseCase struct {
	req  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.req = req
	return f.resp, f.err
}

func TestHandler_Handle(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:  time.Date(2026, 10, 20, 0, 0, 0, 0, brt),
		Open:  true,
		Slots: []types.TimeString{"09:00", "09:30"},
	}}
	h := NewHandler(uc, brt, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/public/available-slots?date=2026-10-20", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2026-10-20","open":true,"slots":["09:00","09:30"]}`, rec.Body.String())
	assert.Equal(t, brt, uc.req.Date.Location())
	assert.Equal(t, 20, uc.req.Date.Day())
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		err   error
		want  int
	}{
		{name: "missing date", query: "", want: http.StatusBadRequest},
		{name: "bad format", query: "?date=20-10-2026", want: http.StatusBadRequest},
		{name: "past date", query: "?date=2020-01-01", err: getAvailableSlots.ErrInvalidDate, want: http.StatusBadRequest},
		{name: "internal", query: "?date=2026-10-20", err: getAvailableSlots.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, brt, logger.NewNop())
			rec := httptest.NewRecorder()

			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/public/available-slots"+tt.query, nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
