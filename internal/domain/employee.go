package domain

import "github.com/google/uuid"

// Employee represents a barber
type Employee struct {
	ID     uuid.UUID
	Name   string
	Active bool
}

// Service represents an item of the public catalog
type Service struct {
	ID              uuid.UUID
	Name            string
	Price           float64
	DurationMinutes int
	Active          bool
}
