package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"reviewmap_backend/internal/config"
	"reviewmap_backend/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	s.initServiceProvider()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := s.runMigrations(ctx); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	s.startSessionReaper(ctx)

	srv := &http.Server{
		Addr:    s.ServiceProvider.HTTPCfg().Address(),
		Handler: s.ServiceProvider.Router(ctx),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("starting server at %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	s.ServiceProvider.DBClient(ctx).Close()
	return nil
}

// runMigrations накатывает встроенные goose-миграции через stdlib
// соединение, пул pgx для запросов открывается отдельно
func (s *App) runMigrations(ctx context.Context) error {
	db, err := sql.Open("pgx", s.ServiceProvider.PgConfig().DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// startSessionReaper - фоновая чистка просроченных сессий.
// Интервал 0 отключает ее, валидность сессии в любом случае
// проверяется при каждом refresh
func (s *App) startSessionReaper(ctx context.Context) {
	interval := s.ServiceProvider.SessionCfg().ReapInterval()
	if interval <= 0 {
		return
	}

	authServ := s.ServiceProvider.AuthService(ctx)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				deleted, err := authServ.ReapExpiredSessions(ctx)
				if err != nil {
					log.Printf("session reaper error: %v", err)
					continue
				}
				if deleted > 0 {
					log.Printf("session reaper: deleted %d expired sessions", deleted)
				}
			}
		}
	}()
}
