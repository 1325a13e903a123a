package get_agenda

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

var brt = time.FixedZone("BRT", -3*60*60)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeService struct{ date time.Time }

func (f *fakeService) GetAgenda(_ context.Context, date time.Time) (*models.AgendaResponse, error) {
	f.date = date
	return &models.AgendaResponse{
		Date:         date.Format("2006-01-02"),
		Appointments: []models.AppointmentResponse{},
		Overlaps:     []models.OverlapWarning{},
	}, nil
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, brt, logger.NewNop())
	// 02:00 UTC 21/10 в BRT ещё 20/10
	h.timeProvider = fixedClock{now: time.Date(2026, 10, 21, 2, 0, 0, 0, time.UTC)}

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 20, svc.date.Day())

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments?date=2026-10-25", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"date":"2026-10-25"`)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments?date=ontem", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
