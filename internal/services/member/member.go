// Package member содержит бизнес-логику участников филиала.
package member

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/church-management/internal/apperrors"
	"github.com/magabrotheeeer/church-management/internal/models"
)

// Repository определяет методы хранилища для участников.
type Repository interface {
	CreateMember(ctx context.Context, member models.Member) (string, error)
	GetMember(ctx context.Context, id string) (*models.Member, error)
	ListMembersByBranch(ctx context.Context, branchID string) ([]*models.Member, error)
	CountMembersByBranch(ctx context.Context, branchID string) (int, error)
	// GetActivePlanByUser возвращает (nil, nil) при отсутствии активной подписки.
	GetActivePlanByUser(ctx context.Context, userID string) (*models.Plan, error)
	GetPlanByName(ctx context.Context, name string) (*models.Plan, error)
}

// Service реализует операции с участниками.
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

// Create создает участника филиала, проверяя лимит участников тарифа
// вызывающего пользователя. Без активной подписки действует тариф free.
func (s *Service) Create(ctx context.Context, actorUserID string, req models.CreateMemberRequest) (*models.Member, error) {
	const op = "member.Create"

	plan, err := s.repo.GetActivePlanByUser(ctx, actorUserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if plan == nil {
		plan, err = s.repo.GetPlanByName(ctx, models.FreePlanName)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	count, err := s.repo.CountMembersByBranch(ctx, req.BranchID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if count >= plan.MaxMembers {
		return nil, fmt.Errorf("%s: plan member limit reached: %w", op, apperrors.ErrInvariantViolation)
	}

	member := models.Member{
		UserID:   req.UserID,
		BranchID: req.BranchID,
		Name:     req.Name,
		Role:     req.Role,
	}
	if req.PositionID != "" {
		member.PositionID = &req.PositionID
	}

	id, err := s.repo.CreateMember(ctx, member)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	member.ID = id

	s.log.Info("created member", slog.String("id", id), slog.String("branch_id", req.BranchID))
	return &member, nil
}

// List возвращает участников филиала.
func (s *Service) List(ctx context.Context, branchID string) ([]*models.Member, error) {
	return s.repo.ListMembersByBranch(ctx, branchID)
}

// Read возвращает участника по ID или apperrors.ErrNotFound.
func (s *Service) Read(ctx context.Context, id string) (*models.Member, error) {
	member, err := s.repo.GetMember(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return member, nil
}
