package address

import (
	review "reviewmap_backend/internal/api/dto/review"
)

type CreateAddressRequest struct {
	Address string `json:"address"`
}

type AddressResponse struct {
	ID        int     `json:"id"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type AddressWithReviewsResponse struct {
	ID        int                               `json:"id"`
	Address   string                            `json:"address"`
	Latitude  float64                           `json:"latitude"`
	Longitude float64                           `json:"longitude"`
	Reviews   []review.ReviewWithAuthorResponse `json:"reviews"`
}
