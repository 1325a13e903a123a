package create_public_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createPublicBooking "github.com/m04kA/SMC-BarberService/internal/usecase/create_public_booking"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

var brt = time.FixedZone("BRT", -3*60*60)

type fakeUseCase struct {
	req  *createPublicBooking.Request
	resp *createPublicBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createPublicBooking.Request) (*createPublicBooking.Response, error) {
	f.req = req
	return f.resp, f.err
}

func body(serviceID uuid.UUID) string {
	return `{"serviceId":"` + serviceID.String() + `","date":"2026-10-20","startTime":"14:00","customerName":"Ana","phone":"(11) 99999-0001"}`
}

func TestHandler_Handle_Created(t *testing.T) {
	serviceID := uuid.New()
	uc := &fakeUseCase{resp: &createPublicBooking.Response{
		ID:              uuid.New(),
		ClientID:        uuid.New(),
		ClientName:      "Ana",
		EmployeeName:    "Carlos",
		ServiceName:     "Corte",
		StartTime:       time.Date(2026, 10, 20, 17, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
		Price:           35,
		Status:          "SCHEDULED",
		NameConflict:    true,
	}}
	h := NewHandler(uc, brt, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/public/bookings", strings.NewReader(body(serviceID))))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"startTime":"14:00"`)
	assert.NotContains(t, rec.Body.String(), "nameConflict")

	require.NotNil(t, uc.req)
	assert.Equal(t, serviceID, uc.req.ServiceID)
	assert.Nil(t, uc.req.EmployeeID)
	assert.Equal(t, "14:00", uc.req.StartTime.String())
	assert.Equal(t, brt, uc.req.Date.Location())
}

func TestHandler_Handle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "capacity", err: createPublicBooking.ErrCapacityExceeded, want: http.StatusConflict},
		{name: "slot taken", err: createPublicBooking.ErrSlotNotAvailable, want: http.StatusConflict},
		{name: "out of hours", err: createPublicBooking.ErrOutOfHours, want: http.StatusBadRequest},
		{name: "closed day", err: createPublicBooking.ErrDayClosed, want: http.StatusBadRequest},
		{name: "service", err: createPublicBooking.ErrServiceNotFound, want: http.StatusNotFound},
		{name: "internal", err: createPublicBooking.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, brt, logger.NewNop())
			rec := httptest.NewRecorder()

			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/public/bookings", strings.NewReader(body(uuid.New()))))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandler_Handle_BadRequest(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, brt, logger.NewNop())

	for _, payload := range []string{
		`not json`,
		`{"serviceId":"x","date":"2026-10-20","startTime":"14:00"}`,
		`{"serviceId":"` + uuid.NewString() + `","date":"2026-10-20","startTime":"2pm"}`,
	} {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/public/bookings", strings.NewReader(payload)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
	}
}
