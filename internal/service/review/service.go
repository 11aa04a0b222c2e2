package review

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"reviewmap_backend/internal/config"
	"reviewmap_backend/internal/model"
	"reviewmap_backend/internal/repository"
	"reviewmap_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	reviewRepo  repository.ReviewRepository
	addressServ service.AddressService
	txManager   trm.Manager
	reviewCfg   config.ReviewConfig
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	addressServ service.AddressService,
	txManager trm.Manager,
	reviewCfg config.ReviewConfig,
) service.ReviewService {
	return &serv{
		reviewRepo:  reviewRepo,
		addressServ: addressServ,
		txManager:   txManager,
		reviewCfg:   reviewCfg,
	}
}

// hashContent - хэш текста отзыва для проверки на дубликаты
func hashContent(content string) string {
	h := sha256.Sum256([]byte(content))
	return hex.EncodeToString(h[:])
}

// validate - проверка лимитов из config.yaml
func (s *serv) validate(review *model.Review) error {
	if review.Rating < s.reviewCfg.MinRating() || review.Rating > s.reviewCfg.MaxRating() {
		return fmt.Errorf("%w: rating must be between %d and %d",
			model.ErrInvalidInput, s.reviewCfg.MinRating(), s.reviewCfg.MaxRating())
	}
	if len(review.Title) > s.reviewCfg.MaxTitleLength() {
		return fmt.Errorf("%w: title too long", model.ErrInvalidInput)
	}
	if len(review.Content) > s.reviewCfg.MaxContentLength() {
		return fmt.Errorf("%w: content too long", model.ErrInvalidInput)
	}
	return nil
}
