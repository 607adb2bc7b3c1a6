// Package churchmanagement собирает основной HTTP-сервис платформы:
// хранилище, миграции, кэш, JWT и таблицу маршрутов.
package churchmanagement

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/church-management/internal/cache"
	"github.com/magabrotheeeer/church-management/internal/config"
	"github.com/magabrotheeeer/church-management/internal/lib/jwt"
	"github.com/magabrotheeeer/church-management/internal/migrations"
	adminservice "github.com/magabrotheeeer/church-management/internal/services/admin"
	authservice "github.com/magabrotheeeer/church-management/internal/services/auth"
	branchservice "github.com/magabrotheeeer/church-management/internal/services/branch"
	churchservice "github.com/magabrotheeeer/church-management/internal/services/church"
	contributionservice "github.com/magabrotheeeer/church-management/internal/services/contribution"
	devotionalservice "github.com/magabrotheeeer/church-management/internal/services/devotional"
	eventservice "github.com/magabrotheeeer/church-management/internal/services/event"
	financeservice "github.com/magabrotheeeer/church-management/internal/services/finance"
	memberservice "github.com/magabrotheeeer/church-management/internal/services/member"
	permissionservice "github.com/magabrotheeeer/church-management/internal/services/permission"
	positionservice "github.com/magabrotheeeer/church-management/internal/services/position"
	uploadservice "github.com/magabrotheeeer/church-management/internal/services/upload"
	"github.com/magabrotheeeer/church-management/internal/storage"
)

// App — собранное приложение основного HTTP-сервиса.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
	cache  *cache.Cache
}

// Services группирует бизнес-сервисы, которыми пользуется таблица маршрутов.
type Services struct {
	Auth         *authservice.AuthService
	Admin        *adminservice.Service
	Church       *churchservice.Service
	Branch       *branchservice.Service
	Member       *memberservice.Service
	Finance      *financeservice.Service
	Position     *positionservice.Service
	Permission   *permissionservice.Service
	Event        *eventservice.Service
	Contribution *contributionservice.Service
	Devotional   *devotionalservice.Service
	Upload       *uploadservice.Service
}

// New создает приложение: подключает Postgres, применяет миграции,
// инициализирует Redis и собирает маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	services := &Services{
		Auth:         authservice.New(db, jwtMaker, logger),
		Admin:        adminservice.New(db, jwtMaker, logger),
		Church:       churchservice.New(db, logger),
		Branch:       branchservice.New(db, logger),
		Member:       memberservice.New(db, logger),
		Finance:      financeservice.New(db, cacheRedis, logger),
		Position:     positionservice.New(db, logger),
		Permission:   permissionservice.New(db, cacheRedis, logger),
		Event:        eventservice.New(db, logger),
		Contribution: contributionservice.New(db, logger),
		Devotional:   devotionalservice.New(db, logger),
		Upload:       uploadservice.New(cfg.UploadDir, logger),
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, jwtMaker, services)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и корректно останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
