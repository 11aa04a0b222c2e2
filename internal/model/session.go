package model

import "time"

// Session - персистентная запись refresh-гранта.
// Одна запись на каждый логин, параллельные сессии одного
// пользователя допустимы
type Session struct {
	ID        string
	UserID    int
	Token     string
	ExpiresAt time.Time
}
