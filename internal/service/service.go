package service

import (
	"context"

	"reviewmap_backend/internal/model"
)

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.AuthData, error)
	// Authenticate - чистая проверка учетных данных запроса: не трогает
	// транспорт, новый access токен (если выпущен по refresh-пути)
	// возвращается результатом и применяется вызывающей стороной
	Authenticate(ctx context.Context, accessToken, refreshToken string) (*model.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
	ReapExpiredSessions(ctx context.Context) (int64, error)
}

type UserService interface {
	Profile(ctx context.Context, userID int) (*model.Profile, error)
	UserByID(ctx context.Context, id int) (*model.Profile, error)
	ListUsers(ctx context.Context) ([]model.Profile, error)
	DeleteUser(ctx context.Context, id int) (*model.UserPublic, error)
}

type AddressService interface {
	FindOrCreate(ctx context.Context, address string) (*model.Address, error)
	ListAddresses(ctx context.Context) ([]model.Address, error)
	AddressByID(ctx context.Context, id int) (*model.Address, error)
	DeleteAddress(ctx context.Context, id int) (*model.Address, error)
	Search(ctx context.Context, query string) ([]model.AddressReviews, error)
}

type ReviewService interface {
	Create(ctx context.Context, userID int, draft *model.Review, address string) (*model.ReviewWithAddress, error)
	GroupedByAddress(ctx context.Context) ([]model.AddressReviews, error)
	ByAddress(ctx context.Context, addressID int) ([]model.ReviewWithAuthor, error)
	Update(ctx context.Context, userID int, review *model.Review) (*model.Review, error)
	Delete(ctx context.Context, userID, id int) (*model.Review, error)
}
