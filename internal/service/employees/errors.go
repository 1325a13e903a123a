package employees

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrPasswordRequired возвращается, когда для удаления нужен пароль
	ErrPasswordRequired = errors.New("admin password required")

	// ErrInvalidPassword возвращается при неверном пароле администратора
	ErrInvalidPassword = errors.New("invalid admin password")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
