// Package branch содержит бизнес-логику филиалов церкви.
package branch

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/church-management/internal/apperrors"
	"github.com/magabrotheeeer/church-management/internal/models"
)

// Repository определяет методы хранилища для филиалов.
type Repository interface {
	CreateBranch(ctx context.Context, branch models.Branch) (string, error)
	GetBranch(ctx context.Context, id string) (*models.Branch, error)
	ListBranchesWithChurch(ctx context.Context) ([]*models.BranchWithChurch, error)
	CountBranchesByChurch(ctx context.Context, churchID string) (int, error)
	// GetActivePlanByUser возвращает (nil, nil) при отсутствии активной подписки.
	GetActivePlanByUser(ctx context.Context, userID string) (*models.Plan, error)
	GetPlanByName(ctx context.Context, name string) (*models.Plan, error)
}

// Service реализует операции с филиалами.
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

// Create создает филиал церкви, предварительно проверяя лимит филиалов
// тарифа создающего пользователя. Без активной подписки действует тариф free.
func (s *Service) Create(ctx context.Context, userID string, req models.CreateBranchRequest) (*models.Branch, error) {
	const op = "branch.Create"

	plan, err := s.repo.GetActivePlanByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if plan == nil {
		plan, err = s.repo.GetPlanByName(ctx, models.FreePlanName)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	count, err := s.repo.CountBranchesByChurch(ctx, req.ChurchID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if count >= plan.MaxBranches {
		return nil, fmt.Errorf("%s: plan branch limit reached: %w", op, apperrors.ErrInvariantViolation)
	}

	branch := models.Branch{
		ChurchID:   req.ChurchID,
		Name:       req.Name,
		PastorName: req.PastorName,
	}
	id, err := s.repo.CreateBranch(ctx, branch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	branch.ID = id

	s.log.Info("created branch", slog.String("id", id), slog.String("church_id", req.ChurchID))
	return &branch, nil
}

// List возвращает все филиалы с вложенными церквями.
func (s *Service) List(ctx context.Context) ([]*models.BranchWithChurch, error) {
	return s.repo.ListBranchesWithChurch(ctx)
}

// Read возвращает филиал по ID или apperrors.ErrNotFound.
func (s *Service) Read(ctx context.Context, id string) (*models.Branch, error) {
	branch, err := s.repo.GetBranch(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return branch, nil
}
