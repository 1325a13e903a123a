package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

const maxBodyBytes = 1 << 20

// ErrEmptyBody возвращается, когда тело запроса пустое
var ErrEmptyBody = errors.New("empty request body")

// DecodeJSON декодирует тело запроса, отвергая неизвестные поля
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}

// DecodeOptionalJSON как DecodeJSON, но пустое тело не ошибка
func DecodeOptionalJSON(r *http.Request, dst interface{}) error {
	if err := DecodeJSON(r, dst); err != nil && !errors.Is(err, ErrEmptyBody) {
		return err
	}
	return nil
}

// PathUUID извлекает UUID из переменной пути
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}

// ParseDate разбирает дату YYYY-MM-DD в часовом поясе барбершопа
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, value, loc)
}

// QueryDate разбирает необязательный параметр даты; пустое значение дает нулевую дату
func QueryDate(r *http.Request, name string, loc *time.Location) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, nil
	}
	return ParseDate(value, loc)
}

// QueryBool разбирает необязательный булев параметр
func QueryBool(r *http.Request, name string) (bool, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return false, nil
	}
	return strconv.ParseBool(value)
}

// QueryInt разбирает необязательный целочисленный параметр
func QueryInt(r *http.Request, name string) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}
