// Package church содержит бизнес-логику церквей (корневых тенантов).
package church

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/church-management/internal/models"
)

// Repository определяет методы хранилища для церквей.
type Repository interface {
	CreateChurch(ctx context.Context, name string) (string, error)
	ListChurches(ctx context.Context) ([]*models.Church, error)
	// SeedDefaultPositions создает дефолтный каталог должностей новой церкви.
	SeedDefaultPositions(ctx context.Context, churchID string, names []string) (int, error)
}

// Service реализует операции с церквями.
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

// Create создает церковь и сразу засевает ей дефолтные должности.
func (s *Service) Create(ctx context.Context, req models.CreateChurchRequest) (*models.Church, error) {
	const op = "church.Create"

	id, err := s.repo.CreateChurch(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.repo.SeedDefaultPositions(ctx, id, models.DefaultPositionNames); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("created church", slog.String("id", id))
	return &models.Church{ID: id, Name: req.Name}, nil
}

// List возвращает все церкви платформы.
func (s *Service) List(ctx context.Context) ([]*models.Church, error) {
	return s.repo.ListChurches(ctx)
}
