// Package contribution содержит бизнес-логику пожертвований.
package contribution

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/church-management/internal/apperrors"
	"github.com/magabrotheeeer/church-management/internal/models"
)

// Repository определяет методы хранилища для пожертвований.
type Repository interface {
	CreateContribution(ctx context.Context, c models.Contribution) (int, error)
	ListContributionsByBranch(ctx context.Context, branchID string) ([]*models.Contribution, error)
}

// Service реализует операции с пожертвованиями.
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

// Create регистрирует пожертвование. Участник опционален: анонимные
// пожертвования сохраняются без member_id.
func (s *Service) Create(ctx context.Context, branchID string, req models.CreateContributionRequest) (*models.Contribution, error) {
	const op = "contribution.Create"

	if req.Amount <= 0 {
		return nil, fmt.Errorf("%s: amount must be positive: %w", op, apperrors.ErrInvariantViolation)
	}

	c := models.Contribution{
		BranchID: branchID,
		Amount:   req.Amount,
		Note:     req.Note,
	}
	if req.MemberID != "" {
		c.MemberID = &req.MemberID
	}

	id, err := s.repo.CreateContribution(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.ID = id

	s.log.Info("created contribution", slog.Int("id", id), slog.String("branch_id", branchID))
	return &c, nil
}

// List возвращает пожертвования филиала, новые первыми.
func (s *Service) List(ctx context.Context, branchID string) ([]*models.Contribution, error) {
	return s.repo.ListContributionsByBranch(ctx, branchID)
}
