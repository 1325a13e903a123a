package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCanceled  AppointmentStatus = "CANCELED"
	StatusNoShow    AppointmentStatus = "NO_SHOW"
)

// ParseAppointmentStatus converts a raw string into a known status
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}

// IsValid reports whether the status is one of the known values
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCanceled, StatusNoShow:
		return true
	default:
		return false
	}
}

// PaymentMethod represents how an appointment was paid
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Dinheiro"
	PaymentPix  PaymentMethod = "Pix"
	PaymentCard PaymentMethod = "Cartão"
)

// ParsePaymentMethod converts a raw string into a known payment method
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	method := PaymentMethod(s)
	if !method.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, s)
	}
	return method, nil
}

// IsValid reports whether the payment method is one of the known values
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentPix, PaymentCard:
		return true
	default:
		return false
	}
}

// Appointment represents a booking in the barbershop agenda
type Appointment struct {
	ID            uuid.UUID
	ClientID      *uuid.UUID
	ClientName    string // имя, введенное при записи (может отличаться от имени клиента)
	CustomerName  *string
	CustomerPhone *string
	EmployeeName  string
	ServiceName   string
	StartTime     time.Time
	// DurationMinutes длительность услуги; <= 0 трактуется как DefaultDurationMinutes
	DurationMinutes int
	Price           float64
	IsPaid          bool
	PaymentMethod   *PaymentMethod
	Status          AppointmentStatus
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the effective duration of the appointment
func (a *Appointment) Duration() time.Duration {
	minutes := a.DurationMinutes
	if minutes <= 0 {
		minutes = DefaultDurationMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// EndTime returns the exclusive end of the occupied interval
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(a.Duration())
}

// IsCanceled returns true if the appointment was canceled
func (a *Appointment) IsCanceled() bool {
	return a.Status == StatusCanceled
}

// OccupiesSlot returns true if the appointment counts toward capacity and overlap checks
func (a *Appointment) OccupiesSlot() bool {
	return !a.IsCanceled()
}

// IsLate returns true if a scheduled appointment is past the no-show tolerance
func (a *Appointment) IsLate(now time.Time) bool {
	return a.Status == StatusScheduled && a.StartTime.Before(now.Add(-NoShowTolerance))
}

// MarkNoShow reclassifies the appointment as a no-show.
// No-shows can never stay paid.
func (a *Appointment) MarkNoShow() {
	a.Status = StatusNoShow
	a.IsPaid = false
	a.PaymentMethod = nil
}

// MarkPaid marks the appointment as paid and completed.
// A nil method falls back to the current one or DefaultPaymentMethod.
func (a *Appointment) MarkPaid(method *PaymentMethod) error {
	if a.Status == StatusNoShow {
		return ErrNoShowCannotBePaid
	}
	chosen := DefaultPaymentMethod
	switch {
	case method != nil:
		chosen = *method
	case a.PaymentMethod != nil:
		chosen = *a.PaymentMethod
	}
	a.IsPaid = true
	a.Status = StatusCompleted
	a.PaymentMethod = &chosen
	return nil
}

// MarkUnpaid clears the payment but keeps the current status
func (a *Appointment) MarkUnpaid() {
	a.IsPaid = false
	a.PaymentMethod = nil
}

// CanBeCanceled returns true if the appointment can still be canceled
func (a *Appointment) CanBeCanceled() bool {
	return a.Status == StatusScheduled
}

// RequiresPasswordToDelete returns true for appointments that were already performed
func (a *Appointment) RequiresPasswordToDelete() bool {
	return a.Status == StatusCompleted
}

// IsOnDate returns true if the appointment starts on the same calendar day as date
// (compared in the location of date)
func (a *Appointment) IsOnDate(date time.Time) bool {
	return SameDay(a.StartTime.In(date.Location()), date)
}

// AppointmentsFilter фильтр выборки записей
type AppointmentsFilter struct {
	From            *time.Time          // начало периода (включительно)
	To              *time.Time          // конец периода (не включительно)
	ClientID        *uuid.UUID          // записи клиента
	Statuses        []AppointmentStatus // если пусто - любые статусы
	IncludeCanceled bool                // включать ли отмененные
	StartedBefore   *time.Time          // записи, начавшиеся раньше указанного момента
}

// DayFilter возвращает фильтр неотмененных записей одного дня в локации day
func DayFilter(day time.Time) AppointmentsFilter {
	from, to := DayRange(day)
	return AppointmentsFilter{From: &from, To: &to}
}
