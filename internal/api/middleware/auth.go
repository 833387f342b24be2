package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarsService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

// TokenVerifier проверяет токен и возвращает ID пользователя
type TokenVerifier interface {
	VerifyToken(token string) (int64, error)
}

// Auth возвращает middleware аутентификации по Bearer токену.
// Запросы без валидного токена отклоняются с 401, ID пользователя
// кладется в контекст запроса.
func Auth(verifier TokenVerifier) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, "требуется аутентификация")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				handlers.RespondUnauthorized(w, "некорректный заголовок Authorization")
				return
			}

			userID, err := verifier.VerifyToken(token)
			if err != nil {
				handlers.RespondUnauthorized(w, "недействительный токен")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
