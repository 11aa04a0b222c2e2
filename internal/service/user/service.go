package user

import (
	"context"

	"reviewmap_backend/internal/model"
	"reviewmap_backend/internal/repository"
	"reviewmap_backend/internal/service"
)

type serv struct {
	userRepo   repository.UserRepository
	reviewRepo repository.ReviewRepository
}

func NewUserService(userRepo repository.UserRepository, reviewRepo repository.ReviewRepository) service.UserService {
	return &serv{
		userRepo:   userRepo,
		reviewRepo: reviewRepo,
	}
}

// Profile - пользователь со своими отзывами и их адресами
func (s *serv) Profile(ctx context.Context, userID int) (*model.Profile, error) {
	return s.UserByID(ctx, userID)
}

// UserByID - возвращает профиль пользователя по ID
func (s *serv) UserByID(ctx context.Context, id int) (*model.Profile, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListReviewsByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &model.Profile{
		User:    user.Public(),
		Reviews: reviews,
	}, nil
}

// ListUsers - все пользователи с их отзывами
func (s *serv) ListUsers(ctx context.Context) ([]model.Profile, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]model.Profile, 0, len(users))
	for _, u := range users {
		reviews, err := s.reviewRepo.ListReviewsByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, model.Profile{
			User:    u.Public(),
			Reviews: reviews,
		})
	}

	return profiles, nil
}

// DeleteUser - удаляет аккаунт. Сессии и отзывы пользователя
// удаляются каскадом на уровне схемы
func (s *serv) DeleteUser(ctx context.Context, id int) (*model.UserPublic, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		return nil, err
	}

	pub := user.Public()
	return &pub, nil
}
