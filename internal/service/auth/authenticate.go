package auth

import (
	"context"
	"errors"
	"time"

	"reviewmap_backend/internal/model"
	"reviewmap_backend/pkg/token"
)

// Authenticate - проверка учетных данных запроса, первый совпавший
// путь выигрывает:
//  1. есть bearer токен - проверяем подпись и срок. Невалидный bearer
//     отклоняется сразу, даже если рядом лежит валидный refresh cookie;
//  2. bearer нет, есть refresh cookie - проверяем подпись, затем ищем
//     запись сессии. Успех выпускает новый access токен, который
//     транспортный слой выставит клиенту;
//  3. учетных данных нет - отказ.
func (s *serv) Authenticate(ctx context.Context, accessToken, refreshToken string) (*model.AuthResult, error) {
	if accessToken != "" {
		claims, err := token.Verify(accessToken, s.jwtConfig.AccessTokenSecretKey())
		if err != nil {
			return nil, model.ErrUnauthorized
		}
		return &model.AuthResult{UserID: claims.UserID}, nil
	}

	if refreshToken != "" {
		newAccessToken, userID, err := s.refreshAccessToken(ctx, refreshToken)
		if err != nil {
			return nil, err
		}
		return &model.AuthResult{
			UserID:         userID,
			NewAccessToken: newAccessToken,
		}, nil
	}

	return nil, model.ErrUnauthorized
}

// Refresh - явная выдача нового access токена по refresh cookie.
// Новая сессия при этом не создается
func (s *serv) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", model.ErrUnauthorized
	}

	newAccessToken, _, err := s.refreshAccessToken(ctx, refreshToken)
	return newAccessToken, err
}

// refreshAccessToken - общий refresh-путь: подпись, затем запись в
// хранилище. Отозванная (logout) или просроченная запись дает
// ErrSessionExpired, хотя сам токен криптографически еще валиден.
// Гонка refresh с параллельным logout допустима: если чтение записи
// успело до удаления, refresh проходит - отзыв евентуальный
func (s *serv) refreshAccessToken(ctx context.Context, refreshToken string) (string, int, error) {
	claims, err := token.Verify(refreshToken, s.jwtConfig.RefreshTokenSecretKey())
	if err != nil {
		return "", 0, model.ErrUnauthorized
	}

	session, err := s.sessionRepo.GetSessionByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", 0, model.ErrSessionExpired
		}
		return "", 0, err
	}

	// Ленивая проверка: просроченные записи никто не чистит синхронно
	if session.ExpiresAt.Before(time.Now()) {
		return "", 0, model.ErrSessionExpired
	}

	newAccessToken, err := token.GenerateAccessToken(
		claims.UserID,
		s.jwtConfig.AccessTokenSecretKey(),
		AccessTokenTTL)
	if err != nil {
		return "", 0, err
	}

	return newAccessToken, claims.UserID, nil
}
