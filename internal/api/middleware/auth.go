package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
)

const (
	bearerPrefix = "Bearer "

	msgMissingToken = "token de acesso ausente"
	msgInvalidToken = "token de acesso inválido"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth проверяет заголовок Authorization: Bearer <token> для админских маршрутов
func AdminAuth(token string, logger Logger) mux.MiddlewareFunc {
	expected := []byte(token)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				logger.Warn("%s %s - missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			provided := []byte(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
			if subtle.ConstantTimeCompare(provided, expected) != 1 {
				logger.Warn("%s %s - invalid bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
