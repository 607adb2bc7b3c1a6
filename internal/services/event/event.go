// Package event содержит бизнес-логику событий филиала.
package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/church-management/internal/models"
)

// Repository определяет методы хранилища для событий.
type Repository interface {
	CreateEvent(ctx context.Context, event models.Event) (string, error)
	ListEventsByBranch(ctx context.Context, branchID string) ([]*models.Event, error)
}

// Service реализует операции с событиями.
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

// Create создает событие филиала. Дата начала приходит строкой RFC3339.
func (s *Service) Create(ctx context.Context, branchID string, req models.CreateEventRequest) (*models.Event, error) {
	const op = "event.Create"

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid starts_at: %w", op, err)
	}

	event := models.Event{
		BranchID:    branchID,
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    startsAt,
	}
	if req.ImageURL != "" {
		event.ImageURL = &req.ImageURL
	}

	id, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	event.ID = id

	s.log.Info("created event", slog.String("id", id), slog.String("branch_id", branchID))
	return &event, nil
}

// List возвращает события филиала, ближайшие первыми.
func (s *Service) List(ctx context.Context, branchID string) ([]*models.Event, error) {
	return s.repo.ListEventsByBranch(ctx, branchID)
}
