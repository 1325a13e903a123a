package create_public_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("service not found")

	// ErrEmployeeNotFound возвращается, когда выбранный сотрудник не найден или неактивен
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDayClosed возвращается для дней без самозаписи
	ErrDayClosed = errors.New("barbershop is closed on this date")

	// ErrSlotNotAvailable возвращается, когда время не входит в свободные слоты
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrOutOfHours возвращается, когда время вне рабочих часов
	ErrOutOfHours = errors.New("booking is outside business hours")

	// ErrCapacityExceeded возвращается, когда на это время уже две записи
	ErrCapacityExceeded = errors.New("slot capacity exceeded")

	// ErrClientResolution возвращается, когда клиента не удалось ни найти, ни создать
	ErrClientResolution = errors.New("failed to resolve client")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
