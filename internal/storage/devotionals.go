package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/church-management/internal/models"
)

// CreateDevotional вставляет девоционал и возвращает его ID.
func (s *Storage) CreateDevotional(ctx context.Context, d models.Devotional) (string, error) {
	const op = "storage.CreateDevotional"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID string
	query := `INSERT INTO devotionals (branch_id, title, body)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	err := s.DB.QueryRowContext(ctx, query, d.BranchID, d.Title, d.Body).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListDevotionalsByBranch возвращает девоционалы филиала, свежие первыми.
func (s *Storage) ListDevotionalsByBranch(ctx context.Context, branchID string) ([]*models.Devotional, error) {
	const op = "storage.ListDevotionalsByBranch"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, branch_id, title, body, published_at
			  FROM devotionals
			  WHERE branch_id = $1
			  ORDER BY published_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Devotional
	for rows.Next() {
		var item models.Devotional
		if err := rows.Scan(&item.ID, &item.BranchID, &item.Title, &item.Body,
			&item.PublishedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
