package review

import (
	"context"

	"reviewmap_backend/internal/model"
)

// Update - обновляет отзыв. Менять чужие отзывы нельзя
func (s *serv) Update(ctx context.Context, userID int, review *model.Review) (*model.Review, error) {
	existing, err := s.reviewRepo.GetReviewByID(ctx, review.ID)
	if err != nil {
		return nil, err
	}

	if existing.UserID != userID {
		return nil, model.ErrForbidden
	}

	existing.Title = review.Title
	existing.Content = review.Content
	existing.ContentHash = hashContent(review.Content)
	existing.Rating = review.Rating

	if err := s.validate(existing); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.UpdateReview(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// Delete - удаляет отзыв. Удалять чужие отзывы нельзя
func (s *serv) Delete(ctx context.Context, userID, id int) (*model.Review, error) {
	existing, err := s.reviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.UserID != userID {
		return nil, model.ErrForbidden
	}

	if err := s.reviewRepo.DeleteReview(ctx, id); err != nil {
		return nil, err
	}

	return existing, nil
}
