package domain

import "errors"

var (
	// ErrUnknownStatus возвращается при разборе неизвестного статуса
	ErrUnknownStatus = errors.New("domain: unknown appointment status")

	// ErrUnknownPaymentMethod возвращается при разборе неизвестного способа оплаты
	ErrUnknownPaymentMethod = errors.New("domain: unknown payment method")

	// ErrNoShowCannotBePaid возвращается при попытке отметить оплату у неявки
	ErrNoShowCannotBePaid = errors.New("domain: no-show appointment cannot be marked as paid")

	// ErrUnknownNotificationType возвращается при разборе неизвестного типа уведомления
	ErrUnknownNotificationType = errors.New("domain: unknown notification type")
)
