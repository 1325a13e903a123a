package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/infra/auth"
	appointmentRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

var brt = time.FixedZone("BRT", -3*60*60)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeAppointments struct {
	items   map[uuid.UUID]*domain.Appointment
	filter  domain.AppointmentsFilter
	deleted []uuid.UUID
}

func (f *fakeAppointments) GetByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAppointments) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.filter = filter
	result := make([]*domain.Appointment, 0, len(f.items))
	for _, a := range f.items {
		copied := *a
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeAppointments) Update(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if _, ok := f.items[a.ID]; !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *a
	f.items[a.ID] = &copied
	return a, nil
}

func (f *fakeAppointments) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(f.items, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeDeletionLogs struct{ items []*domain.DeletionLog }

func (f *fakeDeletionLogs) Create(_ context.Context, l *domain.DeletionLog) (*domain.DeletionLog, error) {
	f.items = append(f.items, l)
	return l, nil
}

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

// fakePassword принимает только пароль "segredo"
type fakePassword struct{}

func (fakePassword) Verify(password string) error {
	switch password {
	case "":
		return auth.ErrPasswordRequired
	case "segredo":
		return nil
	default:
		return auth.ErrInvalidPassword
	}
}

func newService(items ...*domain.Appointment) (*Service, *fakeAppointments, *fakeDeletionLogs) {
	repo := &fakeAppointments{items: map[uuid.UUID]*domain.Appointment{}}
	for _, a := range items {
		repo.items[a.ID] = a
	}
	logs := &fakeDeletionLogs{}
	svc := NewService(repo, logs, fakeTx{}, fakePassword{}, "admin@barbearia.local", brt, logger.NewNop())
	svc.timeProvider = fixedClock{now: time.Date(2026, 10, 20, 12, 0, 0, 0, brt)}
	return svc, repo, logs
}

func appointmentAt(hour, minute int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              uuid.New(),
		ClientName:      "João",
		EmployeeName:    "Carlos",
		ServiceName:     "Corte",
		StartTime:       time.Date(2026, 10, 20, hour, minute, 0, 0, brt),
		DurationMinutes: 30,
		Price:           35,
		Status:          status,
	}
}

func TestService_GetAgenda(t *testing.T) {
	first := appointmentAt(10, 0, domain.StatusScheduled)
	first.DurationMinutes = 60
	second := appointmentAt(10, 30, domain.StatusScheduled)
	canceled := appointmentAt(10, 15, domain.StatusCanceled)

	svc, repo, _ := newService(first, second, canceled)

	resp, err := svc.GetAgenda(context.Background(), time.Date(2026, 10, 20, 0, 0, 0, 0, brt))
	require.NoError(t, err)

	assert.Equal(t, "2026-10-20", resp.Date)
	assert.True(t, repo.filter.IncludeCanceled)
	assert.Len(t, resp.Appointments, 3)
	require.Len(t, resp.Overlaps, 1)
	assert.Equal(t, first.ID, resp.Overlaps[0].FirstID)
	assert.Equal(t, second.ID, resp.Overlaps[0].SecondID)
	assert.Equal(t, "10:30", resp.Overlaps[0].SecondStartTime)
}

func TestService_UpdateCheckpoint(t *testing.T) {
	t.Run("paid defaults to pix", func(t *testing.T) {
		a := appointmentAt(10, 0, domain.StatusScheduled)
		svc, repo, _ := newService(a)

		resp, err := svc.UpdateCheckpoint(context.Background(), a.ID, &models.UpdateCheckpointRequest{
			Price:  ptr.Ptr(50.0),
			IsPaid: true,
			Status: "COMPLETED",
		})
		require.NoError(t, err)

		assert.Equal(t, "COMPLETED", resp.Status)
		require.NotNil(t, resp.PaymentMethod)
		assert.Equal(t, "Pix", *resp.PaymentMethod)
		assert.Equal(t, 50.0, repo.items[a.ID].Price)
	})

	t.Run("no-show forces unpaid", func(t *testing.T) {
		a := appointmentAt(10, 0, domain.StatusScheduled)
		svc, repo, _ := newService(a)

		_, err := svc.UpdateCheckpoint(context.Background(), a.ID, &models.UpdateCheckpointRequest{
			Price:         ptr.Ptr(35.0),
			IsPaid:        true,
			Status:        "NO_SHOW",
			PaymentMethod: ptr.Ptr("Dinheiro"),
		})
		require.NoError(t, err)

		stored := repo.items[a.ID]
		assert.Equal(t, domain.StatusNoShow, stored.Status)
		assert.False(t, stored.IsPaid)
		assert.Nil(t, stored.PaymentMethod)
	})

	t.Run("moves time within the same day and renames", func(t *testing.T) {
		a := appointmentAt(10, 0, domain.StatusScheduled)
		svc, repo, _ := newService(a)

		newTime := types.TimeString("11:30")
		_, err := svc.UpdateCheckpoint(context.Background(), a.ID, &models.UpdateCheckpointRequest{
			Price:        ptr.Ptr(60.0),
			Status:       "COMPLETED",
			StartTime:    &newTime,
			ServiceName:  ptr.Ptr(" Corte + Barba "),
			EmployeeName: ptr.Ptr("Rafael"),
		})
		require.NoError(t, err)

		stored := repo.items[a.ID]
		assert.True(t, stored.StartTime.Equal(time.Date(2026, 10, 20, 11, 30, 0, 0, brt)))
		assert.Equal(t, "Corte + Barba", stored.ServiceName)
		assert.Equal(t, "Rafael", stored.EmployeeName)
		assert.False(t, stored.IsPaid)
	})

	t.Run("validation", func(t *testing.T) {
		a := appointmentAt(10, 0, domain.StatusScheduled)
		svc, _, _ := newService(a)

		_, err := svc.UpdateCheckpoint(context.Background(), a.ID, &models.UpdateCheckpointRequest{Status: "COMPLETED"})
		assert.ErrorIs(t, err, ErrInvalidPrice)

		_, err = svc.UpdateCheckpoint(context.Background(), a.ID, &models.UpdateCheckpointRequest{Price: ptr.Ptr(-1.0), Status: "COMPLETED"})
		assert.ErrorIs(t, err, ErrInvalidPrice)

		_, err = svc.UpdateCheckpoint(context.Background(), a.ID, &models.UpdateCheckpointRequest{Price: ptr.Ptr(10.0), Status: "CANCELED"})
		assert.ErrorIs(t, err, ErrInvalidStatus)

		_, err = svc.UpdateCheckpoint(context.Background(), a.ID, &models.UpdateCheckpointRequest{
			Price: ptr.Ptr(10.0), Status: "COMPLETED", PaymentMethod: ptr.Ptr("Cheque"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.UpdateCheckpoint(context.Background(), uuid.New(), &models.UpdateCheckpointRequest{Price: ptr.Ptr(10.0), Status: "COMPLETED"})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestService_TogglePayment(t *testing.T) {
	t.Run("paid then unpaid", func(t *testing.T) {
		a := appointmentAt(10, 0, domain.StatusScheduled)
		svc, repo, _ := newService(a)

		resp, err := svc.TogglePayment(context.Background(), a.ID)
		require.NoError(t, err)
		assert.True(t, resp.IsPaid)
		assert.Equal(t, "COMPLETED", resp.Status)
		assert.Equal(t, "Pix", *resp.PaymentMethod)

		resp, err = svc.TogglePayment(context.Background(), a.ID)
		require.NoError(t, err)
		assert.False(t, resp.IsPaid)
		assert.Nil(t, resp.PaymentMethod)
		assert.Equal(t, domain.StatusCompleted, repo.items[a.ID].Status)
	})

	t.Run("no-show is rejected", func(t *testing.T) {
		a := appointmentAt(10, 0, domain.StatusNoShow)
		svc, repo, _ := newService(a)

		_, err := svc.TogglePayment(context.Background(), a.ID)
		assert.ErrorIs(t, err, ErrNoShowCannotBePaid)
		assert.False(t, repo.items[a.ID].IsPaid)
	})
}

func TestService_Cancel(t *testing.T) {
	scheduled := appointmentAt(10, 0, domain.StatusScheduled)
	completed := appointmentAt(11, 0, domain.StatusCompleted)
	svc, repo, _ := newService(scheduled, completed)

	_, err := svc.Cancel(context.Background(), scheduled.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCanceled, repo.items[scheduled.ID].Status)

	_, err = svc.Cancel(context.Background(), completed.ID)
	assert.ErrorIs(t, err, ErrCannotCancel)

	_, err = svc.Cancel(context.Background(), scheduled.ID)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_Delete(t *testing.T) {
	t.Run("scheduled without password", func(t *testing.T) {
		a := appointmentAt(10, 0, domain.StatusScheduled)
		svc, repo, logs := newService(a)

		require.NoError(t, svc.Delete(context.Background(), a.ID, &models.DeleteRequest{}))
		assert.Equal(t, []uuid.UUID{a.ID}, repo.deleted)
		assert.Empty(t, logs.items)
	})

	t.Run("completed requires password", func(t *testing.T) {
		a := appointmentAt(10, 0, domain.StatusCompleted)
		svc, repo, logs := newService(a)

		err := svc.Delete(context.Background(), a.ID, &models.DeleteRequest{})
		assert.ErrorIs(t, err, ErrPasswordRequired)

		err = svc.Delete(context.Background(), a.ID, &models.DeleteRequest{Password: "errado"})
		assert.ErrorIs(t, err, ErrInvalidPassword)
		assert.Empty(t, repo.deleted)
		assert.Empty(t, logs.items)
	})

	t.Run("completed with password writes log", func(t *testing.T) {
		a := appointmentAt(10, 0, domain.StatusCompleted)
		a.IsPaid = true
		svc, repo, logs := newService(a)

		require.NoError(t, svc.Delete(context.Background(), a.ID, &models.DeleteRequest{Password: "segredo"}))

		assert.Equal(t, []uuid.UUID{a.ID}, repo.deleted)
		require.Len(t, logs.items, 1)
		assert.Equal(t, "admin@barbearia.local", logs.items[0].UserEmail)
		assert.Equal(t, DeletionReason, logs.items[0].Reason)
		assert.Equal(t, a.ID, logs.items[0].AppointmentDetails.ID)
		assert.True(t, logs.items[0].AppointmentDetails.IsPaid)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _, _ := newService()
		err := svc.Delete(context.Background(), uuid.New(), &models.DeleteRequest{})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}
