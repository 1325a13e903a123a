package notifications

import "errors"

var (
	// ErrNotificationNotFound возвращается, когда уведомление не найдено
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrAlreadyResolved возвращается при повторной обработке уведомления
	ErrAlreadyResolved = errors.New("notification already resolved")

	// ErrClientNotFound возвращается, когда клиент из уведомления уже удален
	ErrClientNotFound = errors.New("client not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
