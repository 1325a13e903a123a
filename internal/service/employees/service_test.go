package employees

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/infra/auth"
	employeeRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-BarberService/internal/service/employees/models"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

type fakeEmployees struct {
	items map[uuid.UUID]*domain.Employee
}

func (f *fakeEmployees) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	e.ID = uuid.New()
	f.items[e.ID] = e
	return e, nil
}

func (f *fakeEmployees) List(_ context.Context, _ bool) ([]*domain.Employee, error) {
	result := make([]*domain.Employee, 0, len(f.items))
	for _, e := range f.items {
		result = append(result, e)
	}
	return result, nil
}

func (f *fakeEmployees) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return employeeRepo.ErrEmployeeNotFound
	}
	delete(f.items, id)
	return nil
}

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

func newService() (*Service, *fakeEmployees) {
	repo := &fakeEmployees{items: map[uuid.UUID]*domain.Employee{}}
	return NewService(repo, fakePassword{}, logger.NewNop()), repo
}

func TestService_Create(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.Create(context.Background(), &models.CreateEmployeeRequest{Name: "  Carlos "})
	require.NoError(t, err)
	assert.Equal(t, "Carlos", resp.Name)
	assert.True(t, resp.Active)
	assert.Len(t, repo.items, 1)

	_, err = svc.Create(context.Background(), &models.CreateEmployeeRequest{Name: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	svc, repo := newService()
	created, err := svc.Create(context.Background(), &models.CreateEmployeeRequest{Name: "Carlos"})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID, &models.DeleteEmployeeRequest{})
	assert.ErrorIs(t, err, ErrPasswordRequired)

	err = svc.Delete(context.Background(), created.ID, &models.DeleteEmployeeRequest{Password: "errado"})
	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.Len(t, repo.items, 1)

	require.NoError(t, svc.Delete(context.Background(), created.ID, &models.DeleteEmployeeRequest{Password: "segredo"}))
	assert.Empty(t, repo.items)

	err = svc.Delete(context.Background(), created.ID, &models.DeleteEmployeeRequest{Password: "segredo"})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestService_List(t *testing.T) {
	svc, _ := newService()
	_, err := svc.Create(context.Background(), &models.CreateEmployeeRequest{Name: "Carlos"})
	require.NoError(t, err)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Employees, 1)
	assert.Equal(t, "Carlos", resp.Employees[0].Name)
}
