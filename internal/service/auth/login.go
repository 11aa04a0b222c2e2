package auth

import (
	"context"
	"errors"
	"time"

	"reviewmap_backend/internal/model"
	"reviewmap_backend/pkg/pass"
	"reviewmap_backend/pkg/token"

	"github.com/google/uuid"
)

// Login - проверяет пароль и выдает пару токенов.
// Несуществующий email и неверный пароль неразличимы для клиента.
// Каждый логин вставляет новую сессию: параллельные логины одного
// пользователя дают параллельные валидные сессии
func (s *serv) Login(ctx context.Context, email, password string) (*model.AuthData, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if !pass.VerifyPassword(user.Password, password) {
		return nil, model.ErrInvalidCredentials
	}

	accessToken, err := token.GenerateAccessToken(
		user.ID,
		s.jwtConfig.AccessTokenSecretKey(),
		AccessTokenTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := token.GenerateRefreshToken(
		user.ID,
		s.jwtConfig.RefreshTokenSecretKey(),
		RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	err = s.sessionRepo.CreateSession(ctx, &model.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(RefreshTokenTTL),
	})
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
