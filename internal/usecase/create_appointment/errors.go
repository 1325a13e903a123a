package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrOutOfHours возвращается, когда время вне рабочих часов
	ErrOutOfHours = errors.New("booking is outside business hours")

	// ErrCapacityExceeded возвращается, когда на это время уже две записи
	ErrCapacityExceeded = errors.New("slot capacity exceeded")

	// ErrPhoneTaken возвращается, когда телефон уже принадлежит другому клиенту
	ErrPhoneTaken = errors.New("phone already registered to another client")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
