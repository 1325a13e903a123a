package domain

import "time"

// Booking rules
const (
	DefaultDurationMinutes = 30
	SlotStepMinutes        = 30
	MaxBookingsPerSlot     = 2 // не более двух неотмененных записей на один и тот же момент
	BusinessOpenHour       = 9
	BusinessCloseHour      = 18 // не включительно
	LastSlotHour           = 17
	LastSlotMinute         = 30
	NoShowTolerance        = 15 * time.Minute
	UnassignedEmployee     = "A definir"
	UnknownEmployee        = "Não Atribuído"
	FinancialHistoryMonths = 6
)

// DefaultPaymentMethod способ оплаты, если не указан явно
const DefaultPaymentMethod = PaymentPix

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultTimezone часовой пояс барбершопа по умолчанию
const DefaultTimezone = "America/Sao_Paulo"
