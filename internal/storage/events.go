package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/church-management/internal/models"
)

// CreateEvent вставляет событие филиала и возвращает его ID.
func (s *Storage) CreateEvent(ctx context.Context, event models.Event) (string, error) {
	const op = "storage.CreateEvent"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID string
	query := `INSERT INTO events (branch_id, title, description, starts_at, image_url)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	err := s.DB.QueryRowContext(ctx, query,
		event.BranchID, event.Title, event.Description, event.StartsAt, event.ImageURL).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListEventsByBranch возвращает события филиала, ближайшие первыми.
func (s *Storage) ListEventsByBranch(ctx context.Context, branchID string) ([]*models.Event, error) {
	const op = "storage.ListEventsByBranch"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, branch_id, title, description, starts_at, image_url
			  FROM events
			  WHERE branch_id = $1
			  ORDER BY starts_at`
	rows, err := s.DB.QueryContext(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Event
	for rows.Next() {
		var item models.Event
		var imageURL sql.NullString
		if err := rows.Scan(&item.ID, &item.BranchID, &item.Title, &item.Description,
			&item.StartsAt, &imageURL); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if imageURL.Valid {
			item.ImageURL = &imageURL.String
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// FindEventsStartingTomorrow возвращает напоминания для участников филиалов,
// в которых завтра начинается событие. Используется планировщиком уведомлений.
func (s *Storage) FindEventsStartingTomorrow(ctx context.Context) ([]*models.EventReminder, error) {
	const op = "storage.FindEventsStartingTomorrow"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT u.email, m.name, e.title, b.name, e.starts_at
			  FROM events e
			  JOIN branches b ON b.id = e.branch_id
			  JOIN members m ON m.branch_id = e.branch_id
			  JOIN users u ON u.id = m.user_id
			  WHERE e.starts_at::DATE = CURRENT_DATE + INTERVAL '1 day'`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.EventReminder
	for rows.Next() {
		var item models.EventReminder
		if err := rows.Scan(&item.Email, &item.MemberName, &item.EventTitle,
			&item.BranchName, &item.StartsAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
