package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/church-management/internal/models"
)

// CreateUser сохраняет нового пользователя и возвращает его ID.
func (s *Storage) CreateUser(ctx context.Context, email, passwordHash string) (string, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID string
	query := `INSERT INTO users (email, password_hash)
			  VALUES ($1, $2)
			  RETURNING id`
	if err := s.DB.QueryRowContext(ctx, query, email, passwordHash).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetUserByEmail возвращает пользователя по email.
// При отсутствии пользователя возвращает обёрнутый sql.ErrNoRows.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, password_hash, created_at
			  FROM users
			  WHERE email = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, email)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetMemberByUserID возвращает профиль участника пользователя.
// Участника может не быть — это не ошибка уровня бизнес-логики,
// поэтому при отсутствии возвращается (nil, nil).
func (s *Storage) GetMemberByUserID(ctx context.Context, userID string) (*models.Member, error) {
	const op = "storage.GetMemberByUserID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, branch_id, position_id, name, role
			  FROM members
			  WHERE user_id = $1`
	m := &models.Member{}
	var positionID sql.NullString
	row := s.DB.QueryRowContext(ctx, query, userID)
	if err := row.Scan(&m.ID, &m.UserID, &m.BranchID, &positionID, &m.Name, &m.Role); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if positionID.Valid {
		m.PositionID = &positionID.String
	}
	return m, nil
}

// GetActivePlanByUser возвращает тариф активной подписки пользователя
// или (nil, nil), если активной подписки нет.
func (s *Storage) GetActivePlanByUser(ctx context.Context, userID string) (*models.Plan, error) {
	const op = "storage.GetActivePlanByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT p.id, p.name, p.max_members, p.max_branches
			  FROM subscriptions s
			  JOIN plans p ON p.id = s.plan_id
			  WHERE s.user_id = $1 AND s.active = true
			  ORDER BY s.id
			  LIMIT 1`
	p := &models.Plan{}
	row := s.DB.QueryRowContext(ctx, query, userID)
	if err := row.Scan(&p.ID, &p.Name, &p.MaxMembers, &p.MaxBranches); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// GetPlanByName возвращает тариф по имени.
func (s *Storage) GetPlanByName(ctx context.Context, name string) (*models.Plan, error) {
	const op = "storage.GetPlanByName"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, max_members, max_branches
			  FROM plans
			  WHERE name = $1`
	p := &models.Plan{}
	row := s.DB.QueryRowContext(ctx, query, name)
	if err := row.Scan(&p.ID, &p.Name, &p.MaxMembers, &p.MaxBranches); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}
