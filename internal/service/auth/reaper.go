package auth

import (
	"context"
	"time"
)

// ReapExpiredSessions - разовая чистка просроченных записей сессий.
// Чистка не участвует в корректности: валидность проверяется лениво
// при каждом lookup, здесь только освобождается хранилище
func (s *serv) ReapExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessionRepo.DeleteExpiredSessions(ctx, time.Now())
}
