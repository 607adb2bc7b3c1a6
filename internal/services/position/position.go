// Package position содержит бизнес-логику должностей церкви,
// включая засев дефолтного каталога и охраняемое удаление.
package position

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/church-management/internal/models"
)

// Repository определяет методы хранилища для должностей.
type Repository interface {
	CreatePosition(ctx context.Context, churchID, name string, isDefault bool) (string, error)
	ListPositionsByChurch(ctx context.Context, churchID string) ([]*models.ChurchPosition, error)
	// DeletePositionGuarded проверяет существование, флаг is_default и ссылки
	// участников внутри одной транзакции, затем удаляет.
	DeletePositionGuarded(ctx context.Context, id string) error
	// SeedDefaultPositions создает отсутствующие дефолтные должности,
	// сравнивая имена без учета регистра. Возвращает число созданных.
	SeedDefaultPositions(ctx context.Context, churchID string, names []string) (int, error)
}

// Service реализует операции с должностями.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create создает пользовательскую (не дефолтную) должность церкви.
func (s *Service) Create(ctx context.Context, churchID, name string) (*models.ChurchPosition, error) {
	const op = "position.Create"
	id, err := s.repo.CreatePosition(ctx, churchID, name, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created position", slog.String("id", id), slog.String("church_id", churchID))
	return &models.ChurchPosition{
		ID:       id,
		ChurchID: churchID,
		Name:     name,
	}, nil
}

// List возвращает должности церкви.
func (s *Service) List(ctx context.Context, churchID string) ([]*models.ChurchPosition, error) {
	return s.repo.ListPositionsByChurch(ctx, churchID)
}

// SeedDefaults создает отсутствующие дефолтные должности церкви.
// Повторный вызов идемпотентен: существующие имена (без учета регистра)
// не дублируются. Возвращает число созданных должностей.
func (s *Service) SeedDefaults(ctx context.Context, churchID string) (int, error) {
	created, err := s.repo.SeedDefaultPositions(ctx, churchID, models.DefaultPositionNames)
	if err != nil {
		return 0, err
	}
	s.log.Info("seeded default positions",
		slog.String("church_id", churchID),
		slog.Int("created", created))
	return created, nil
}

// Delete удаляет должность. Ошибки проверок приходят из хранилища:
// apperrors.ErrNotFound для несуществующей должности и
// apperrors.ErrInvariantViolation для дефолтной или используемой участниками.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeletePositionGuarded(ctx, id); err != nil {
		return err
	}
	s.log.Info("deleted position", slog.String("id", id))
	return nil
}
