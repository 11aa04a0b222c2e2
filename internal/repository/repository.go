package repository

import (
	"context"
	"time"

	"reviewmap_backend/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id int) error
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSessionByToken(ctx context.Context, token string) (*model.Session, error)
	DeleteSessionsByToken(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type AddressRepository interface {
	CreateAddress(ctx context.Context, address *model.Address) (id int, err error)
	GetAddressByValue(ctx context.Context, address string) (*model.Address, error)
	GetAddressByID(ctx context.Context, id int) (*model.Address, error)
	ListAddresses(ctx context.Context) ([]model.Address, error)
	SearchAddresses(ctx context.Context, query string) ([]model.Address, error)
	DeleteAddress(ctx context.Context, id int) error
}

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *model.Review) (id int, err error)
	GetReviewByID(ctx context.Context, id int) (*model.Review, error)
	HasDuplicateReview(ctx context.Context, userID, addressID int, contentHash string) (bool, error)
	ListReviewsByAddress(ctx context.Context, addressID int) ([]model.ReviewWithAuthor, error)
	ListReviewsByUser(ctx context.Context, userID int) ([]model.ReviewWithAddress, error)
	UpdateReview(ctx context.Context, review *model.Review) error
	DeleteReview(ctx context.Context, id int) error
}
