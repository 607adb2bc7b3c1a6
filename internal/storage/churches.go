package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/church-management/internal/models"
)

// CreateChurch вставляет новую церковь и возвращает её ID.
func (s *Storage) CreateChurch(ctx context.Context, name string) (string, error) {
	const op = "storage.CreateChurch"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID string
	query := `INSERT INTO churches (name) VALUES ($1) RETURNING id`
	if err := s.DB.QueryRowContext(ctx, query, name).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetChurch возвращает церковь по ID.
func (s *Storage) GetChurch(ctx context.Context, id string) (*models.Church, error) {
	const op = "storage.GetChurch"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, avatar_url FROM churches WHERE id = $1`
	c := &models.Church{}
	var avatarURL sql.NullString
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &avatarURL); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if avatarURL.Valid {
		c.AvatarURL = &avatarURL.String
	}
	return c, nil
}

// ListChurches возвращает все церкви платформы.
func (s *Storage) ListChurches(ctx context.Context) ([]*models.Church, error) {
	const op = "storage.ListChurches"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, avatar_url FROM churches ORDER BY name`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Church
	for rows.Next() {
		var item models.Church
		var avatarURL sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &avatarURL); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if avatarURL.Valid {
			item.AvatarURL = &avatarURL.String
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountBranchesByChurch возвращает число филиалов церкви.
// Используется для проверки лимита тарифа.
func (s *Storage) CountBranchesByChurch(ctx context.Context, churchID string) (int, error) {
	const op = "storage.CountBranchesByChurch"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	query := `SELECT COUNT(*) FROM branches WHERE church_id = $1`
	if err := s.DB.QueryRowContext(ctx, query, churchID).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
