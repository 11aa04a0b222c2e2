package model

import "errors"

var (
	// ErrInvalidCredentials - неверный пароль или несуществующий email.
	// Сообщение одно для обоих случаев, чтобы нельзя было перебирать аккаунты
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized - запрос без валидных учетных данных
	ErrUnauthorized = errors.New("unauthorized")

	// ErrSessionExpired - refresh-токен криптографически валиден,
	// но его запись в хранилище удалена или просрочена
	ErrSessionExpired = errors.New("session expired")

	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidInput  = errors.New("invalid input")
)
