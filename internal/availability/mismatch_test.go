package availability

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

func TestDetectNameMismatches(t *testing.T) {
	joao := &domain.Client{ID: uuid.New(), Name: "João Silva"}
	joaoShort := &domain.Client{ID: uuid.New(), Name: "João S."}

	same := booking(at(10, 0), 30, domain.StatusScheduled)
	same.ClientName = "joão silva"
	same.ClientID = &joao.ID

	differs := booking(at(11, 0), 30, domain.StatusCompleted)
	differs.ClientName = "joão silva"
	differs.ClientID = &joaoShort.ID

	canceled := booking(at(12, 0), 30, domain.StatusCanceled)
	canceled.ClientName = "Outro Nome"
	canceled.ClientID = &joao.ID

	unlinked := booking(at(13, 0), 30, domain.StatusScheduled)
	unlinked.ClientName = "Sem Cadastro"

	unknownID := uuid.New()
	unknownClient := booking(at(14, 0), 30, domain.StatusScheduled)
	unknownClient.ClientName = "Fantasma"
	unknownClient.ClientID = &unknownID

	appointments := []*domain.Appointment{same, differs, canceled, unlinked, unknownClient}
	mismatches := DetectNameMismatches(appointments, []*domain.Client{joao, joaoShort})

	require.Len(t, mismatches, 1)
	assert.Equal(t, NameMismatch{
		AppointmentID: differs.ID,
		ClientID:      joaoShort.ID,
		BookedName:    "joão silva",
		ClientName:    "João S.",
	}, mismatches[0])

	// детектор ничего не меняет
	assert.Equal(t, "joão silva", differs.ClientName)
	assert.Equal(t, "João S.", joaoShort.Name)
}

func TestDetectNameMismatches_TrimmedNames(t *testing.T) {
	client := &domain.Client{ID: uuid.New(), Name: "Pedro Alves "}
	a := booking(at(10, 0), 30, domain.StatusNoShow)
	a.ClientName = "  PEDRO ALVES"
	a.ClientID = &client.ID

	assert.Empty(t, DetectNameMismatches([]*domain.Appointment{a}, []*domain.Client{client}))
}
