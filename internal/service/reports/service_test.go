package reports

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

var brt = time.FixedZone("BRT", -3*60*60)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeAppointments struct {
	items  []*domain.Appointment
	filter domain.AppointmentsFilter
}

func (f *fakeAppointments) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.filter = filter
	return f.items, nil
}

func newService(now time.Time, items ...*domain.Appointment) (*Service, *fakeAppointments) {
	repo := &fakeAppointments{items: items}
	svc := NewService(repo, brt, logger.NewNop())
	svc.timeProvider = fixedClock{now: now}
	return svc, repo
}

func completedPaid(start time.Time, employee string, price float64) *domain.Appointment {
	return &domain.Appointment{
		ID:           uuid.New(),
		EmployeeName: employee,
		StartTime:    start,
		Price:        price,
		IsPaid:       true,
		Status:       domain.StatusCompleted,
	}
}

func TestService_GetFinancialReport_CurrentYear(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, brt)
	items := []*domain.Appointment{
		completedPaid(time.Date(2026, 3, 2, 10, 0, 0, 0, brt), "Carlos", 40),
		completedPaid(time.Date(2026, 1, 15, 10, 0, 0, 0, brt), "", 20),
		// выполнена, но не оплачена
		{ID: uuid.New(), StartTime: time.Date(2026, 2, 3, 10, 0, 0, 0, brt), Price: 30, Status: domain.StatusCompleted},
		// прошлый год попадает только в историю
		completedPaid(time.Date(2025, 11, 20, 10, 0, 0, 0, brt), "Rafael", 100),
	}
	svc, repo := newService(now, items...)

	resp, err := svc.GetFinancialReport(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, 2026, resp.Year)
	assert.Equal(t, 60.0, resp.AnnualRevenue)
	assert.Equal(t, 3, resp.AnnualServices)
	assert.Equal(t, 20.0, resp.AverageMonthlyRevenue)

	require.NotNil(t, repo.filter.From)
	assert.True(t, repo.filter.From.Equal(time.Date(2025, 10, 1, 0, 0, 0, 0, brt)))
	assert.True(t, repo.filter.To.Equal(time.Date(2027, 1, 1, 0, 0, 0, 0, brt)))

	require.Len(t, resp.MonthlyHistory, domain.FinancialHistoryMonths)
	assert.Equal(t, "março de 2026", resp.MonthlyHistory[0].Label)
	assert.Equal(t, 40.0, resp.MonthlyHistory[0].RevenueByEmployee["Carlos"])
	assert.Equal(t, 1, resp.MonthlyHistory[1].Completed)
	assert.Equal(t, 0.0, resp.MonthlyHistory[1].Revenue)
	assert.Equal(t, 20.0, resp.MonthlyHistory[2].RevenueByEmployee[domain.UnknownEmployee])
	assert.Equal(t, "novembro de 2025", resp.MonthlyHistory[4].Label)
	assert.Equal(t, 100.0, resp.MonthlyHistory[4].Revenue)
	assert.Equal(t, "outubro de 2025", resp.MonthlyHistory[5].Label)
}

func TestService_GetFinancialReport_PastYearDividesByTwelve(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, brt)
	svc, _ := newService(now, completedPaid(time.Date(2025, 6, 1, 10, 0, 0, 0, brt), "Carlos", 120))

	resp, err := svc.GetFinancialReport(context.Background(), 2025)
	require.NoError(t, err)

	assert.Equal(t, 120.0, resp.AnnualRevenue)
	assert.Equal(t, 10.0, resp.AverageMonthlyRevenue)
}

func TestService_GetFinancialReport_MonthBoundaryInLocation(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, brt)
	// 01/03 01:00 UTC в BRT ещё 28 февраля
	svc, _ := newService(now, completedPaid(time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC), "Carlos", 50))

	resp, err := svc.GetFinancialReport(context.Background(), 2026)
	require.NoError(t, err)

	assert.Equal(t, 0.0, resp.MonthlyHistory[0].Revenue)
	assert.Equal(t, 50.0, resp.MonthlyHistory[1].Revenue)
}

func TestService_GetFinancialReport_InvalidYear(t *testing.T) {
	svc, _ := newService(time.Date(2026, 3, 10, 12, 0, 0, 0, brt))

	_, err := svc.GetFinancialReport(context.Background(), 1999)
	assert.ErrorIs(t, err, ErrInvalidYear)
}
