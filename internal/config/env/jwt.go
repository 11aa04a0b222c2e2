package env

import (
	"fmt"
	"os"

	"reviewmap_backend/internal/config"
)

const (
	accessTokenSecretEnvName  = "ACCESS_TOKEN_SECRET"
	refreshTokenSecretEnvName = "REFRESH_TOKEN_SECRET"
)

type jwtConfig struct {
	accessTokenSecretKey  string
	refreshTokenSecretKey string
}

func NewJWTConfig() (config.JWTConfig, error) {
	accessSecret := os.Getenv(accessTokenSecretEnvName)
	if len(accessSecret) == 0 {
		return nil, fmt.Errorf("access token secret key not found")
	}

	refreshSecret := os.Getenv(refreshTokenSecretEnvName)
	if len(refreshSecret) == 0 {
		return nil, fmt.Errorf("refresh token secret key not found")
	}

	return &jwtConfig{
		accessTokenSecretKey:  accessSecret,
		refreshTokenSecretKey: refreshSecret,
	}, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.accessTokenSecretKey)
}

func (j *jwtConfig) RefreshTokenSecretKey() []byte {
	return []byte(j.refreshTokenSecretKey)
}
