package reports

import "errors"

var (
	// ErrInvalidYear возвращается при недопустимом годе отчета
	ErrInvalidYear = errors.New("invalid report year")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
