package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
	CORSOrigin() string
}

type PGConfig interface {
	DSN() string
}

// JWTConfig - два независимых секрета подписи.
// Время жизни токенов фиксировано константами в сервисе аутентификации
type JWTConfig interface {
	AccessTokenSecretKey() []byte
	RefreshTokenSecretKey() []byte
}

type GeocoderConfig interface {
	APIKey() string
	BaseURL() string
}

// SessionConfig - настройки фоновой чистки просроченных сессий.
// Нулевой интервал отключает чистку, валидность все равно
// проверяется лениво при каждом lookup
type SessionConfig interface {
	ReapInterval() time.Duration
}

// ReviewConfig - лимиты валидации отзывов из config.yaml
type ReviewConfig interface {
	MinRating() int
	MaxRating() int
	MaxTitleLength() int
	MaxContentLength() int
}
