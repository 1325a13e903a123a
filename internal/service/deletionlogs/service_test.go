package deletionlogs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

type fakeDeletionLogs struct {
	items []*domain.DeletionLog
	err   error
}

func (f *fakeDeletionLogs) List(_ context.Context) ([]*domain.DeletionLog, error) {
	return f.items, f.err
}

func TestService_List(t *testing.T) {
	entry := &domain.DeletionLog{
		ID:        uuid.New(),
		UserEmail: "admin@barbearia.local",
		AppointmentDetails: domain.AppointmentSnapshot{
			ID:         uuid.New(),
			ClientName: "João",
			Status:     string(domain.StatusCompleted),
		},
		Reason:    "Exclusão manual de agendamento realizado",
		DeletedAt: time.Date(2026, 10, 20, 15, 0, 0, 0, time.UTC),
	}
	svc := NewService(&fakeDeletionLogs{items: []*domain.DeletionLog{entry, nil}}, logger.NewNop())

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Logs, 1)
	assert.Equal(t, "João", resp.Logs[0].AppointmentDetails.ClientName)
}

func TestService_List_RepositoryError(t *testing.T) {
	svc := NewService(&fakeDeletionLogs{err: errors.New("db down")}, logger.NewNop())

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
