package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidPassword возвращается при неверном пароле администратора
	ErrInvalidPassword = errors.New("auth: invalid admin password")

	// ErrPasswordRequired возвращается, когда пароль не передан
	ErrPasswordRequired = errors.New("auth: admin password required")
)

// PasswordVerifier проверяет пароль администратора по bcrypt-хешу
type PasswordVerifier struct {
	hash []byte
}

// NewPasswordVerifier создает проверку пароля по bcrypt-хешу из конфигурации
func NewPasswordVerifier(hash string) (*PasswordVerifier, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("auth: invalid bcrypt hash: %w", err)
	}
	return &PasswordVerifier{hash: []byte(hash)}, nil
}

// Verify сравнивает пароль с хешем
func (v *PasswordVerifier) Verify(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}
		return fmt.Errorf("auth: compare password: %w", err)
	}
	return nil
}

// HashPassword возвращает bcrypt-хеш пароля (для подготовки конфигурации)
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(hash), nil
}
