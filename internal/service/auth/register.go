package auth

import (
	"context"
	"errors"

	"reviewmap_backend/internal/model"
	"reviewmap_backend/pkg/pass"
)

// Register - создает пользователя. Сессия при регистрации
// не открывается, клиент логинится отдельным запросом
func (s *serv) Register(ctx context.Context, user *model.User) (*model.User, error) {
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash

	// Проверка на дубль и вставка в одной транзакции
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := s.userRepo.GetUserByEmail(ctx, user.Email)
		if err == nil {
			return model.ErrAlreadyExists
		}
		if !errors.Is(err, model.ErrNotFound) {
			return err
		}

		user.ID, err = s.userRepo.CreateUser(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
