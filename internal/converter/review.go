package converter

import (
	reviewDto "reviewmap_backend/internal/api/dto/review"
	"reviewmap_backend/internal/model"
)

func ToReviewModel(req reviewDto.CreateReviewRequest) *model.Review {
	return &model.Review{
		Title:   req.Title,
		Content: req.Content,
		Rating:  req.Rating,
	}
}

func ToReviewResponse(review *model.Review) reviewDto.ReviewResponse {
	return reviewDto.ReviewResponse{
		ID:        review.ID,
		Title:     review.Title,
		Content:   review.Content,
		Rating:    review.Rating,
		AddressID: review.AddressID,
		UserID:    review.UserID,
		CreatedAt: review.CreatedAt,
	}
}

func ToReviewWithAddressResponse(item *model.ReviewWithAddress) reviewDto.ReviewWithAddressResponse {
	return reviewDto.ReviewWithAddressResponse{
		ReviewResponse: ToReviewResponse(&item.Review),
		Address: reviewDto.AddressInfoResponse{
			ID:        item.Address.ID,
			Address:   item.Address.Address,
			Latitude:  item.Address.Latitude,
			Longitude: item.Address.Longitude,
		},
	}
}

func ToReviewsWithAuthor(items []model.ReviewWithAuthor) []reviewDto.ReviewWithAuthorResponse {
	result := make([]reviewDto.ReviewWithAuthorResponse, len(items))
	for i, item := range items {
		result[i] = reviewDto.ReviewWithAuthorResponse{
			ReviewResponse: ToReviewResponse(&item.Review),
			User: reviewDto.AuthorResponse{
				ID:    item.User.ID,
				Email: item.User.Email,
				Name:  item.User.Name,
			},
		}
	}
	return result
}

func toReviewsWithAddress(items []model.ReviewWithAddress) []reviewDto.ReviewWithAddressResponse {
	result := make([]reviewDto.ReviewWithAddressResponse, len(items))
	for i := range items {
		result[i] = ToReviewWithAddressResponse(&items[i])
	}
	return result
}
