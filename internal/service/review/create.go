package review

import (
	"context"
	"fmt"

	"reviewmap_backend/internal/model"
)

// Create - создает отзыв: находит или создает адрес, проверяет
// дубликат по хэшу содержимого и вставляет запись. Многошаговая
// запись выполняется в одной транзакции
func (s *serv) Create(ctx context.Context, userID int, draft *model.Review, addressStr string) (*model.ReviewWithAddress, error) {
	if err := s.validate(draft); err != nil {
		return nil, err
	}

	draft.UserID = userID
	draft.ContentHash = hashContent(draft.Content)

	var result *model.ReviewWithAddress

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		address, err := s.addressServ.FindOrCreate(ctx, addressStr)
		if err != nil {
			return err
		}
		draft.AddressID = address.ID

		duplicate, err := s.reviewRepo.HasDuplicateReview(ctx, userID, address.ID, draft.ContentHash)
		if err != nil {
			return err
		}
		if duplicate {
			return fmt.Errorf("%w: duplicate review for this address", model.ErrAlreadyExists)
		}

		if _, err := s.reviewRepo.CreateReview(ctx, draft); err != nil {
			return err
		}

		result = &model.ReviewWithAddress{
			Review:  *draft,
			Address: *address,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
