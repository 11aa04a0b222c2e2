package token

import (
	"time"

	"reviewmap_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateRefreshToken - выпускает долгоживущий refresh токен.
// Подписывается отдельным секретом и сохраняется в таблицу сессий
// как есть, поиск при refresh идет по значению токена.
// jti нужен, чтобы два логина одного пользователя в одну секунду
// не выдали одинаковую строку (колонка token уникальна)
func GenerateRefreshToken(userID int, secretKey []byte, ttl time.Duration) (string, error) {
	claims := model.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}
