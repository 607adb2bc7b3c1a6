package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/church-management/internal/models"
)

// CreateMember вставляет нового участника и возвращает его ID.
func (s *Storage) CreateMember(ctx context.Context, member models.Member) (string, error) {
	const op = "storage.CreateMember"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO members (user_id, branch_id, position_id, name, role)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		member.UserID, member.BranchID, member.PositionID, member.Name, member.Role).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetMember возвращает участника по ID.
func (s *Storage) GetMember(ctx context.Context, id string) (*models.Member, error) {
	const op = "storage.GetMember"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, branch_id, position_id, name, role
			  FROM members
			  WHERE id = $1`
	m := &models.Member{}
	var positionID sql.NullString
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&m.ID, &m.UserID, &m.BranchID, &positionID, &m.Name, &m.Role); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if positionID.Valid {
		m.PositionID = &positionID.String
	}
	return m, nil
}

// ListMembersByBranch возвращает участников филиала.
func (s *Storage) ListMembersByBranch(ctx context.Context, branchID string) ([]*models.Member, error) {
	const op = "storage.ListMembersByBranch"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, branch_id, position_id, name, role
			  FROM members
			  WHERE branch_id = $1
			  ORDER BY name`
	rows, err := s.DB.QueryContext(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Member
	for rows.Next() {
		var item models.Member
		var positionID sql.NullString
		if err := rows.Scan(&item.ID, &item.UserID, &item.BranchID, &positionID,
			&item.Name, &item.Role); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if positionID.Valid {
			item.PositionID = &positionID.String
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountMembersByBranch возвращает число участников филиала.
// Используется для проверки лимита тарифа.
func (s *Storage) CountMembersByBranch(ctx context.Context, branchID string) (int, error) {
	const op = "storage.CountMembersByBranch"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	query := `SELECT COUNT(*) FROM members WHERE branch_id = $1`
	if err := s.DB.QueryRowContext(ctx, query, branchID).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// ListPermissionTypesByMember возвращает типы разрешений участника.
func (s *Storage) ListPermissionTypesByMember(ctx context.Context, memberID string) ([]string, error) {
	const op = "storage.ListPermissionTypesByMember"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT type FROM permissions WHERE member_id = $1 ORDER BY type`
	rows, err := s.DB.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []string{}
	for rows.Next() {
		var permType string
		if err := rows.Scan(&permType); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, permType)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
