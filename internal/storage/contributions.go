package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/church-management/internal/models"
)

// CreateContribution вставляет пожертвование и возвращает его ID.
func (s *Storage) CreateContribution(ctx context.Context, c models.Contribution) (int, error) {
	const op = "storage.CreateContribution"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO contributions (branch_id, member_id, amount, note)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	err := s.DB.QueryRowContext(ctx, query,
		c.BranchID, c.MemberID, c.Amount, c.Note).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListContributionsByBranch возвращает пожертвования филиала, новые первыми.
func (s *Storage) ListContributionsByBranch(ctx context.Context, branchID string) ([]*models.Contribution, error) {
	const op = "storage.ListContributionsByBranch"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, branch_id, member_id, amount, note, created_at
			  FROM contributions
			  WHERE branch_id = $1
			  ORDER BY created_at DESC, id DESC`
	rows, err := s.DB.QueryContext(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Contribution
	for rows.Next() {
		var item models.Contribution
		var memberID sql.NullString
		if err := rows.Scan(&item.ID, &item.BranchID, &memberID, &item.Amount,
			&item.Note, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if memberID.Valid {
			item.MemberID = &memberID.String
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
