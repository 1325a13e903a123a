package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Client represents a barbershop customer
type Client struct {
	ID         uuid.UUID
	Name       string
	Phone      string
	TotalSpent float64
	LastVisit  *time.Time
	DeletedAt  *time.Time
	CreatedAt  time.Time
}

// IsActive returns true if the client was not soft-deleted
func (c *Client) IsActive() bool {
	return c.DeletedAt == nil
}

// HasPhone returns true if the client has a phone on file
func (c *Client) HasPhone() bool {
	return strings.TrimSpace(c.Phone) != ""
}

// NamesMatch compares two person names ignoring case and surrounding whitespace
func NamesMatch(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// DigitsOnly strips every non-digit rune from a phone number
func DigitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
