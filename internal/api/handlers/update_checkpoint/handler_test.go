package update_checkpoint

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/service/appointments"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

type fakeService struct {
	req *models.UpdateCheckpointRequest
	err error
}

func (f *fakeService) UpdateCheckpoint(_ context.Context, id uuid.UUID, req *models.UpdateCheckpointRequest) (*models.AppointmentResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentResponse{ID: id, Status: req.Status, IsPaid: req.IsPaid}, nil
}

func serve(h *Handler, id, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/appointments/{id}/checkpoint", h.Handle).Methods(http.MethodPut)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/appointments/"+id+"/checkpoint", strings.NewReader(body)))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	id := uuid.New().String()

	svc := &fakeService{}
	rec := serve(NewHandler(svc, logger.NewNop()), id,
		`{"price":35,"isPaid":true,"status":"COMPLETED","paymentMethod":"Cartão","startTime":"10:30"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.req.Price)
	assert.Equal(t, 35.0, *svc.req.Price)
	require.NotNil(t, svc.req.StartTime)
	assert.Equal(t, "10:30", svc.req.StartTime.String())
	assert.Contains(t, rec.Body.String(), `"isPaid":true`)

	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{name: "empty body", body: "", want: http.StatusBadRequest},
		{name: "bad time", body: `{"price":35,"status":"COMPLETED","startTime":"25:00"}`, err: appointments.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "not found", body: `{"price":35,"status":"COMPLETED"}`, err: appointments.ErrAppointmentNotFound, want: http.StatusNotFound},
		{name: "no price", body: `{"status":"COMPLETED"}`, err: appointments.ErrInvalidPrice, want: http.StatusBadRequest},
		{name: "bad status", body: `{"price":35,"status":"CANCELED"}`, err: appointments.ErrInvalidStatus, want: http.StatusBadRequest},
		{name: "internal", body: `{"price":35,"status":"COMPLETED"}`, err: appointments.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeService{err: tt.err}, logger.NewNop()), id, tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
