package get_dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/availability"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	getDashboard "github.com/m04kA/SMC-BarberService/internal/usecase/get_dashboard"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

var brt = time.FixedZone("BRT", -3*60*60)

type fakeUseCase struct {
	req *getDashboard.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getDashboard.Request) (*getDashboard.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	day := time.Date(2026, 10, 20, 0, 0, 0, 0, brt)
	return &getDashboard.Response{
		Date: day,
		Stats: domain.DashboardStats{
			TotalRevenue:      50,
			TotalAppointments: 2,
			PendingPayment:    35,
		},
		Appointments: []*domain.Appointment{{
			ID:           uuid.New(),
			ClientName:   "joão",
			ServiceName:  "Corte",
			EmployeeName: "Carlos",
			StartTime:    day.Add(9 * time.Hour),
			Status:       domain.StatusScheduled,
		}},
		NameConflicts: []availability.NameMismatch{{
			AppointmentID: uuid.New(),
			ClientID:      uuid.New(),
			BookedName:    "joão",
			ClientName:    "João Silva",
		}},
		NoShowsMarked: 1,
	}, nil
}

func TestHandler_Handle(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, brt, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?date=2026-10-20", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 20, uc.req.Date.Day())

	var body DashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-10-20", body.Date)
	assert.Equal(t, 35.0, body.Stats.PendingPayment)
	assert.NotNil(t, body.Stats.RevenueByEmployee)
	require.Len(t, body.Appointments, 1)
	assert.Equal(t, "09:00", body.Appointments[0].StartTime)
	require.Len(t, body.NameConflicts, 1)
	assert.Equal(t, "João Silva", body.NameConflicts[0].ClientName)
	assert.Equal(t, 1, body.NoShowsMarked)
}

func TestHandler_Handle_Errors(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, brt, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?date=20-10-2026", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h = NewHandler(&fakeUseCase{err: errors.New("db down")}, brt, logger.NewNop())
	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
