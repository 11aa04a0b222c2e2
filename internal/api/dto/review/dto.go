package review

import "time"

type CreateReviewRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Address string `json:"address"`
}

type UpdateReviewRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

type ReviewResponse struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	AddressID int       `json:"addressId"`
	UserID    int       `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthorResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type ReviewWithAuthorResponse struct {
	ReviewResponse
	User AuthorResponse `json:"user"`
}

type AddressInfoResponse struct {
	ID        int     `json:"id"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ReviewWithAddressResponse struct {
	ReviewResponse
	Address AddressInfoResponse `json:"address"`
}
