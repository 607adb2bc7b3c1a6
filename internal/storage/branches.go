package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/church-management/internal/models"
)

// CreateBranch вставляет новый филиал и возвращает его ID.
func (s *Storage) CreateBranch(ctx context.Context, branch models.Branch) (string, error) {
	const op = "storage.CreateBranch"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID string
	query := `INSERT INTO branches (church_id, name, pastor_name)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	err := s.DB.QueryRowContext(ctx, query,
		branch.ChurchID, branch.Name, branch.PastorName).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetBranch возвращает филиал по ID.
func (s *Storage) GetBranch(ctx context.Context, id string) (*models.Branch, error) {
	const op = "storage.GetBranch"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, church_id, name, pastor_name FROM branches WHERE id = $1`
	b := &models.Branch{}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&b.ID, &b.ChurchID, &b.Name, &b.PastorName); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

// ListBranchesWithChurch возвращает все филиалы вместе с данными их церквей.
func (s *Storage) ListBranchesWithChurch(ctx context.Context) ([]*models.BranchWithChurch, error) {
	const op = "storage.ListBranchesWithChurch"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT b.id, b.church_id, b.name, b.pastor_name, c.id, c.name
			  FROM branches b
			  JOIN churches c ON c.id = b.church_id
			  ORDER BY c.name, b.name`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.BranchWithChurch
	for rows.Next() {
		var item models.BranchWithChurch
		if err := rows.Scan(&item.Branch.ID, &item.Branch.ChurchID, &item.Branch.Name,
			&item.Branch.PastorName, &item.Church.ID, &item.Church.Name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
