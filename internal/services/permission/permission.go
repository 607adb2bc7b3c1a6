// Package permission содержит бизнес-логику управления разрешениями участников.
package permission

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/church-management/internal/lib/sl"
)

// Repository определяет методы хранилища для работы с разрешениями.
type Repository interface {
	// ListDistinctPermissionTypes возвращает глобальный каталог типов разрешений.
	ListDistinctPermissionTypes(ctx context.Context) ([]string, error)
	// InsertPermissions вставляет отсутствующие пары (member, type) и
	// возвращает число фактически вставленных строк.
	InsertPermissions(ctx context.Context, memberID string, types []string) (int, error)
}

// Cache описывает методы кеширования каталога разрешений.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

const catalogCacheKey = "permissions:catalog"

// Service реализует операции с разрешениями.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// New создает новый Service.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Catalog возвращает каталог всех типов разрешений, существующих в системе.
// Каталог глобальный, не по-тенантный, и кешируется на пять минут.
func (s *Service) Catalog(ctx context.Context) ([]string, error) {
	var cached []string
	found, err := s.cache.Get(catalogCacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read permission catalog from cache", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	types, err := s.repo.ListDistinctPermissionTypes(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(catalogCacheKey, types, 5*time.Minute); err != nil {
		s.log.Warn("failed to cache permission catalog", sl.Err(err))
	}
	return types, nil
}

// Assign массово выдает участнику разрешения. Уже существующие пары
// молча пропускаются — повторный вызов идемпотентен и вернет added = 0.
func (s *Service) Assign(ctx context.Context, memberID string, types []string) (int, error) {
	added, err := s.repo.InsertPermissions(ctx, memberID, types)
	if err != nil {
		return 0, err
	}

	if added > 0 {
		if err := s.cache.Invalidate(catalogCacheKey); err != nil {
			s.log.Warn("failed to invalidate permission catalog cache", sl.Err(err))
		}
	}

	s.log.Info("assigned permissions",
		slog.String("member_id", memberID),
		slog.Int("requested", len(types)),
		slog.Int("added", added))
	return added, nil
}
