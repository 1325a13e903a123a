package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrCannotCancel возвращается, когда запись уже нельзя отменить
	ErrCannotCancel = errors.New("appointment cannot be canceled")

	// ErrNoShowCannotBePaid возвращается при попытке отметить оплату у неявки
	ErrNoShowCannotBePaid = errors.New("no-show appointment cannot be marked as paid")

	// ErrInvalidStatus возвращается при недопустимом итоговом статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidPrice возвращается при отсутствующей или отрицательной цене
	ErrInvalidPrice = errors.New("invalid appointment price")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrPasswordRequired возвращается, когда для удаления нужен пароль
	ErrPasswordRequired = errors.New("admin password required")

	// ErrInvalidPassword возвращается при неверном пароле администратора
	ErrInvalidPassword = errors.New("invalid admin password")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
