package app

import (
	"context"
	"net/http"

	addressAPI "reviewmap_backend/internal/api/address"
	authAPI "reviewmap_backend/internal/api/auth"
	reviewAPI "reviewmap_backend/internal/api/review"
	userAPI "reviewmap_backend/internal/api/user"
	"reviewmap_backend/internal/config"
	"reviewmap_backend/internal/config/env"
	"reviewmap_backend/internal/geocoder"
	"reviewmap_backend/internal/middleware"
	"reviewmap_backend/internal/repository"
	"reviewmap_backend/internal/repository/address_repo"
	"reviewmap_backend/internal/repository/review_repo"
	"reviewmap_backend/internal/repository/session_repo"
	"reviewmap_backend/internal/repository/user_repo"
	"reviewmap_backend/internal/service"
	"reviewmap_backend/internal/service/address"
	"reviewmap_backend/internal/service/auth"
	"reviewmap_backend/internal/service/review"
	"reviewmap_backend/internal/service/user"
	"reviewmap_backend/pkg/resp"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg      config.JWTConfig
	sessionCfg  config.SessionConfig
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	authServ    service.AuthService
	authHand    *authAPI.Handler

	// User bits
	userServ service.UserService
	userHand *userAPI.Handler

	// Address bits
	geocoderCfg config.GeocoderConfig
	geocoder    *geocoder.Client
	addressRepo repository.AddressRepository
	addressServ service.AddressService
	addressHand *addressAPI.Handler

	// Review bits
	reviewCfg  config.ReviewConfig
	reviewRepo repository.ReviewRepository
	reviewServ service.ReviewService
	reviewHand *reviewAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) SessionCfg() config.SessionConfig {
	if sp.sessionCfg == nil {
		cfg, err := env.NewSessionConfig()
		if err != nil {
			panic("failed to get session config: " + err.Error())
		}
		sp.sessionCfg = cfg
	}
	return sp.sessionCfg
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.userRepo
}

func (sp *ServiceProvider) SessionRepo(ctx context.Context) repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.UserRepo(ctx),
			sp.SessionRepo(ctx),
			sp.TXManager(ctx),
			sp.JWTCfg(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) UserService(ctx context.Context) service.UserService {
	if sp.userServ == nil {
		sp.userServ = user.NewUserService(sp.UserRepo(ctx), sp.ReviewRepo(ctx))
	}
	return sp.userServ
}

func (sp *ServiceProvider) UserHandler(ctx context.Context) *userAPI.Handler {
	if sp.userHand == nil {
		sp.userHand = userAPI.NewHandler(userAPI.HandlerDeps{Serv: sp.UserService(ctx)})
	}
	return sp.userHand
}

func (sp *ServiceProvider) GeocoderCfg() config.GeocoderConfig {
	if sp.geocoderCfg == nil {
		cfg, err := env.NewGeocoderConfig()
		if err != nil {
			panic("failed to get geocoder config: " + err.Error())
		}
		sp.geocoderCfg = cfg
	}
	return sp.geocoderCfg
}

func (sp *ServiceProvider) Geocoder() *geocoder.Client {
	if sp.geocoder == nil {
		sp.geocoder = geocoder.NewClient(sp.GeocoderCfg())
	}
	return sp.geocoder
}

func (sp *ServiceProvider) AddressRepo(ctx context.Context) repository.AddressRepository {
	if sp.addressRepo == nil {
		sp.addressRepo = address_repo.NewAddressRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.addressRepo
}

func (sp *ServiceProvider) AddressService(ctx context.Context) service.AddressService {
	if sp.addressServ == nil {
		sp.addressServ = address.NewAddressService(
			sp.AddressRepo(ctx),
			sp.ReviewRepo(ctx),
			sp.Geocoder(),
		)
	}
	return sp.addressServ
}

func (sp *ServiceProvider) AddressHandler(ctx context.Context) *addressAPI.Handler {
	if sp.addressHand == nil {
		sp.addressHand = addressAPI.NewHandler(addressAPI.HandlerDeps{Serv: sp.AddressService(ctx)})
	}
	return sp.addressHand
}

func (sp *ServiceProvider) ReviewCfg() config.ReviewConfig {
	if sp.reviewCfg == nil {
		cfg, err := env.NewReviewConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get review config: " + err.Error())
		}
		sp.reviewCfg = cfg
	}
	return sp.reviewCfg
}

func (sp *ServiceProvider) ReviewRepo(ctx context.Context) repository.ReviewRepository {
	if sp.reviewRepo == nil {
		sp.reviewRepo = review_repo.NewReviewRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.reviewRepo
}

func (sp *ServiceProvider) ReviewService(ctx context.Context) service.ReviewService {
	if sp.reviewServ == nil {
		sp.reviewServ = review.NewReviewService(
			sp.ReviewRepo(ctx),
			sp.AddressService(ctx),
			sp.TXManager(ctx),
			sp.ReviewCfg(),
		)
	}
	return sp.reviewServ
}

func (sp *ServiceProvider) ReviewHandler(ctx context.Context) *reviewAPI.Handler {
	if sp.reviewHand == nil {
		sp.reviewHand = reviewAPI.NewHandler(reviewAPI.HandlerDeps{Serv: sp.ReviewService(ctx)})
	}
	return sp.reviewHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware, credentials включены ради auth cookie
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{sp.HTTPCfg().CORSOrigin()},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           60 * 15,
		}))

		requireAuth := middleware.RequireAuth(sp.AuthService(ctx))

		authHandler := sp.AuthHandler(ctx)
		userHandler := sp.UserHandler(ctx)
		addressHandler := sp.AddressHandler(ctx)
		reviewHandler := sp.ReviewHandler(ctx)

		r.Route("/api", func(rr chi.Router) {
			rr.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
				resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Pong!"})
			})

			// User endpoints
			rr.Route("/users", func(ru chi.Router) {
				ru.Post("/register", authHandler.Register)
				ru.Post("/login", authHandler.Login)
				ru.Post("/refresh-token", authHandler.Refresh)
				ru.With(requireAuth).Post("/logout", authHandler.Logout)

				ru.With(requireAuth).Get("/profile", userHandler.Profile)
				ru.Get("/", userHandler.GetAll)
				ru.Get("/{id}", userHandler.GetByID)
				ru.Delete("/{id}", userHandler.Delete)
			})

			// Address endpoints
			rr.Route("/addresses", func(ra chi.Router) {
				ra.Post("/", addressHandler.FindOrCreate)
				ra.Get("/", addressHandler.GetAll)
				ra.Get("/search", addressHandler.Search)
				ra.Get("/{id}", addressHandler.GetByID)
				ra.Delete("/{id}", addressHandler.Delete)
			})

			// Review endpoints
			rr.Route("/reviews", func(rv chi.Router) {
				rv.With(requireAuth).Post("/", reviewHandler.Create)
				rv.Get("/grouped-by-address", reviewHandler.GroupedByAddress)
				rv.Get("/{addressId}", reviewHandler.ByAddress)
				rv.With(requireAuth).Put("/{id}", reviewHandler.Update)
				rv.With(requireAuth).Delete("/{id}", reviewHandler.Delete)
			})
		})

		sp.router = r
	}

	return sp.router
}
