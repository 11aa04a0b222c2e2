package model

// AuthData - результат логина: пользователь и пара токенов
type AuthData struct {
	User         *User
	AccessToken  string
	RefreshToken string
}

// AuthResult - результат проверки учетных данных запроса.
// NewAccessToken заполняется только когда аутентификация прошла
// по refresh-пути и транспортный слой должен выставить новый cookie
type AuthResult struct {
	UserID         int
	NewAccessToken string
}
