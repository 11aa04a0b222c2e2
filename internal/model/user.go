package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID       int
	Email    string
	Name     string
	Password string
}

// UserPublic - представление пользователя без хэша пароля,
// отдается наружу в профилях и списках
type UserPublic struct {
	ID    int
	Email string
	Name  string
}

type UserClaims struct {
	jwt.RegisteredClaims
	UserID int `json:"userId"`
}

func (u *User) Public() UserPublic {
	return UserPublic{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}
