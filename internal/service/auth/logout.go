package auth

import (
	"context"
)

// Logout - удаляет все сессии с данным refresh токеном (set-delete,
// повтор идемпотентен). Уже выданные access токены продолжают
// действовать до истечения своего срока - отзыв закрывает только
// refresh-путь
func (s *serv) Logout(ctx context.Context, refreshToken string) error {
	return s.sessionRepo.DeleteSessionsByToken(ctx, refreshToken)
}
