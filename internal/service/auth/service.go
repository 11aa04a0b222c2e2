package auth

import (
	"time"

	"reviewmap_backend/internal/config"
	"reviewmap_backend/internal/repository"
	"reviewmap_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// Время жизни токенов фиксировано: cookie в API слое
// выставляются с теми же max-age
const (
	AccessTokenTTL  = 3 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

type serv struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	txManager   trm.Manager
	jwtConfig   config.JWTConfig
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	txManager trm.Manager,
	jwtConfig config.JWTConfig,
) service.AuthService {
	return &serv{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		txManager:   txManager,
		jwtConfig:   jwtConfig,
	}
}
