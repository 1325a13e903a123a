package availability

import "errors"

var (
	// ErrOutOfHours возвращается, когда час начала записи вне рабочего окна [9, 18)
	ErrOutOfHours = errors.New("availability: booking is outside business hours")

	// ErrCapacityExceeded возвращается, когда на этот момент уже есть две неотмененные записи
	ErrCapacityExceeded = errors.New("availability: slot capacity exceeded")

	// ErrInvalidDuration возвращается при нулевой или отрицательной длительности
	ErrInvalidDuration = errors.New("availability: invalid duration")
)
