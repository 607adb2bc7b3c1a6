// Package devotional содержит бизнес-логику девоционалов.
package devotional

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/church-management/internal/models"
)

// Repository определяет методы хранилища для девоционалов.
type Repository interface {
	CreateDevotional(ctx context.Context, d models.Devotional) (string, error)
	ListDevotionalsByBranch(ctx context.Context, branchID string) ([]*models.Devotional, error)
}

// Service реализует операции с девоционалами.
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

// Create публикует девоционал в филиале.
func (s *Service) Create(ctx context.Context, branchID string, req models.CreateDevotionalRequest) (*models.Devotional, error) {
	const op = "devotional.Create"

	d := models.Devotional{
		BranchID: branchID,
		Title:    req.Title,
		Body:     req.Body,
	}
	id, err := s.repo.CreateDevotional(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	d.ID = id

	s.log.Info("published devotional", slog.String("id", id), slog.String("branch_id", branchID))
	return &d, nil
}

// List возвращает девоционалы филиала, свежие первыми.
func (s *Service) List(ctx context.Context, branchID string) ([]*models.Devotional, error) {
	return s.repo.ListDevotionalsByBranch(ctx, branchID)
}
