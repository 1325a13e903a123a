package availability

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// NameMismatch запись, имя в которой расходится с именем привязанного клиента
type NameMismatch struct {
	AppointmentID uuid.UUID
	ClientID      uuid.UUID
	BookedName    string
	ClientName    string
}

// DetectNameMismatches находит неотмененные записи, у которых имя не совпадает
// с каноническим именем клиента (без учета регистра и пробелов по краям).
// Записи без клиента или с клиентом вне снимка пропускаются.
func DetectNameMismatches(appointments []*domain.Appointment, clients []*domain.Client) []NameMismatch {
	byID := make(map[uuid.UUID]*domain.Client, len(clients))
	for _, c := range clients {
		if c != nil {
			byID[c.ID] = c
		}
	}

	result := make([]NameMismatch, 0)
	for _, a := range appointments {
		if a == nil || a.IsCanceled() || a.ClientID == nil {
			continue
		}
		client, ok := byID[*a.ClientID]
		if !ok {
			continue
		}
		if domain.NamesMatch(a.ClientName, client.Name) {
			continue
		}
		result = append(result, NameMismatch{
			AppointmentID: a.ID,
			ClientID:      client.ID,
			BookedName:    a.ClientName,
			ClientName:    client.Name,
		})
	}

	return result
}
