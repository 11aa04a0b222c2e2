package review

import (
	"context"

	"reviewmap_backend/internal/model"
)

// GroupedByAddress - все адреса, каждый со своими отзывами и авторами
func (s *serv) GroupedByAddress(ctx context.Context) ([]model.AddressReviews, error) {
	addresses, err := s.addressServ.ListAddresses(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make([]model.AddressReviews, 0, len(addresses))
	for _, a := range addresses {
		reviews, err := s.reviewRepo.ListReviewsByAddress(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		grouped = append(grouped, model.AddressReviews{
			Address: a,
			Reviews: reviews,
		})
	}

	return grouped, nil
}

// ByAddress - отзывы на конкретный адрес
func (s *serv) ByAddress(ctx context.Context, addressID int) ([]model.ReviewWithAuthor, error) {
	return s.reviewRepo.ListReviewsByAddress(ctx, addressID)
}
