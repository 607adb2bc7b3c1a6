package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/church-management/internal/models"
)

// GetAdminByEmail возвращает администратора платформы по email.
func (s *Storage) GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	const op = "storage.GetAdminByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, password_hash, role
			  FROM admin_users
			  WHERE email = $1`
	a := &models.AdminUser{}
	row := s.DB.QueryRowContext(ctx, query, email)
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}
