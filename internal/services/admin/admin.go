// Package admin содержит бизнес-логику операторов платформы.
package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/church-management/internal/apperrors"
	"github.com/magabrotheeeer/church-management/internal/lib/jwt"
	"github.com/magabrotheeeer/church-management/internal/lib/password"
	"github.com/magabrotheeeer/church-management/internal/models"
)

// Repository определяет методы хранилища для администраторов.
type Repository interface {
	GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	ListChurches(ctx context.Context) ([]*models.Church, error)
}

// Service реализует операции администраторов платформы.
type Service struct {
	repo     Repository
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// New создает новый Service.
func New(repo Repository, jwtMaker jwt.Maker, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// LoginResult — результат авторизации администратора.
type LoginResult struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login проверяет пароль администратора и выдает отдельный админский токен.
// Несуществующий email и неверный пароль дают одинаковую ошибку.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	const op = "admin.Login"

	adm, err := s.repo.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.Compare(adm.PasswordHash, rawPassword); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateAdminToken(adm.ID, adm.Email, adm.Role)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("admin logged in", slog.String("admin_id", adm.ID), slog.String("role", adm.Role))
	return &LoginResult{
		Token: token,
		ID:    adm.ID,
		Email: adm.Email,
		Role:  adm.Role,
	}, nil
}

// ListChurches возвращает все церкви платформы для админ-панели.
func (s *Service) ListChurches(ctx context.Context) ([]*models.Church, error) {
	return s.repo.ListChurches(ctx)
}
