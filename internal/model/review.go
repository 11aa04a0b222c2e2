package model

import "time"

type Review struct {
	ID          int
	Title       string
	Content     string
	ContentHash string
	Rating      int
	AddressID   int
	UserID      int
	CreatedAt   time.Time
}

type ReviewWithAuthor struct {
	Review Review
	User   UserPublic
}

type ReviewWithAddress struct {
	Review  Review
	Address Address
}

// Profile - пользователь со своими отзывами и их адресами
type Profile struct {
	User    UserPublic
	Reviews []ReviewWithAddress
}
