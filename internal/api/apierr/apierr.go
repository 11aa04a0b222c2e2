// Package apierr - единое отображение доменных ошибок в HTTP статусы.
// Ошибки хранилища (все прочие) отдаются как 500, чтобы клиент мог
// отличить "нет доступа" от "сервис недоступен"
package apierr

import (
	"errors"
	"net/http"

	"reviewmap_backend/internal/model"
)

func Status(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInvalidCredentials),
		errors.Is(err, model.ErrUnauthorized),
		errors.Is(err, model.ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
