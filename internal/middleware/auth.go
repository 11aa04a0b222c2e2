package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"reviewmap_backend/internal/api/cookies"
	"reviewmap_backend/internal/model"
	"reviewmap_backend/internal/service"
	"reviewmap_backend/pkg/resp"
)

type ctxKey int

const userIDKey ctxKey = iota

// UserIDFromContext - достает ID аутентифицированного пользователя,
// положенный туда middleware RequireAuth
func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// RequireAuth - закрывает маршрут аутентификацией. Access токен
// принимается только из заголовка Authorization: cookie с access
// токеном middleware не читает, иначе залежавшийся cookie блокировал
// бы refresh-путь при живой сессии. Если аутентификация прошла по
// refresh-пути, клиенту выставляется свежий access cookie.
// Любой отказ - единый 401 с текстовой причиной
func RequireAuth(authServ service.AuthService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessToken := bearerToken(r)

			var refreshToken string
			if c, err := r.Cookie(cookies.RefreshTokenName); err == nil {
				refreshToken = c.Value
			}

			result, err := authServ.Authenticate(r.Context(), accessToken, refreshToken)
			if err != nil {
				status := http.StatusUnauthorized
				if !isAuthError(err) {
					status = http.StatusInternalServerError
				}
				resp.WriteErrorResponse(w, status, "unauthorized: "+err.Error())
				return
			}

			if result.NewAccessToken != "" {
				cookies.SetAccessToken(w, result.NewAccessToken)
			}

			ctx := context.WithValue(r.Context(), userIDKey, result.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return token
}

// isAuthError - отличает отказ в доступе от недоступности хранилища
func isAuthError(err error) bool {
	return errors.Is(err, model.ErrUnauthorized) ||
		errors.Is(err, model.ErrSessionExpired) ||
		errors.Is(err, model.ErrInvalidCredentials)
}
