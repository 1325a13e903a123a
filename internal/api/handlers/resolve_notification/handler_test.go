package resolve_notification

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

	"github.com/m04kA/SMC-BarberService/internal/service/notifications"
	"github.com/m04kA/SMC-BarberService/internal/service/notifications/models"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

type fakeService struct {
	req *models.ResolveRequest
	err error
}

func (f *fakeService) Resolve(_ context.Context, id uuid.UUID, req *models.ResolveRequest) (*models.ResolveResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ResolveResponse{ID: id, Accepted: req.Accept, ClientRenamed: req.Accept}, nil
}

func serve(h *Handler, id, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/notifications/{id}/resolve", h.Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/notifications/"+id+"/resolve", strings.NewReader(body)))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	id := uuid.New().String()

	t.Run("accept renames client", func(t *testing.T) {
		svc := &fakeService{}
		rec := serve(NewHandler(svc, logger.NewNop()), id, `{"accept":true}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, svc.req.Accept)
		assert.Contains(t, rec.Body.String(), `"clientRenamed":true`)
	})

	t.Run("empty body dismisses", func(t *testing.T) {
		svc := &fakeService{}
		rec := serve(NewHandler(svc, logger.NewNop()), id, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, svc.req.Accept)
	})

	tests := []struct {
		name string
		id   string
		err  error
		want int
	}{
		{name: "bad id", id: "abc", want: http.StatusBadRequest},
		{name: "not found", id: id, err: notifications.ErrNotificationNotFound, want: http.StatusNotFound},
		{name: "already resolved", id: id, err: notifications.ErrAlreadyResolved, want: http.StatusConflict},
		{name: "client deleted", id: id, err: notifications.ErrClientNotFound, want: http.StatusNotFound},
		{name: "internal", id: id, err: notifications.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeService{err: tt.err}, logger.NewNop()), tt.id, `{"accept":false}`)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
