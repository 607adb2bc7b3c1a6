// Package auth содержит бизнес-логику регистрации и авторизации пользователей.
package auth

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

// UserRepository описывает контракт для работы с пользователями и их профилями.
type UserRepository interface {
	CreateUser(ctx context.Context, email, passwordHash string) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetMemberByUserID возвращает (nil, nil), если профиля участника нет.
	GetMemberByUserID(ctx context.Context, userID string) (*models.Member, error)
	ListPermissionTypesByMember(ctx context.Context, memberID string) ([]string, error)
	// GetActivePlanByUser возвращает (nil, nil) при отсутствии активной подписки.
	GetActivePlanByUser(ctx context.Context, userID string) (*models.Plan, error)
	CreateMember(ctx context.Context, member models.Member) (string, error)
}

// AuthService отвечает за регистрацию и авторизацию.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// New создает новый экземпляр AuthService.
func New(users UserRepository, jwtMaker jwt.Maker, log *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Login проверяет пароль пользователя и выдает JWT со снимком состояния
// участника: id, email, member id, роль, филиал и плоский список разрешений.
//
// Для несуществующего email и неверного пароля возвращается одна и та же
// ошибка apperrors.ErrInvalidCredentials — перечисление пользователей
// по ответам сервера невозможно.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*models.LoginResult, error) {
	const op = "auth.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.Compare(user.PasswordHash, rawPassword); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	member, err := s.users.GetMemberByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	claims := jwt.UserClaims{
		UserID:      user.ID,
		Email:       user.Email,
		Permissions: []string{},
	}
	var memberView *models.MemberView
	if member != nil {
		perms, err := s.users.ListPermissionTypesByMember(ctx, member.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		claims.MemberID = &member.ID
		claims.Role = &member.Role
		claims.BranchID = &member.BranchID
		claims.Permissions = perms
		memberView = &models.MemberView{
			ID:          member.ID,
			Name:        member.Name,
			Role:        member.Role,
			BranchID:    member.BranchID,
			Permissions: perms,
		}
	}

	token, err := s.jwtMaker.GenerateToken(claims)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	planName := models.FreePlanName
	plan, err := s.users.GetActivePlanByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if plan != nil {
		planName = plan.Name
	}

	s.log.Info("login success", slog.String("user_id", user.ID))
	return &models.LoginResult{
		Token: token,
		User: models.UserView{
			ID:    user.ID,
			Email: user.Email,
			Plan:  planName,
		},
		Member: memberView,
	}, nil
}

// Register создает нового пользователя с хэшированием пароля.
// Если указан филиал, сразу создается профиль участника с ролью MEMBER.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	const op = "auth.Register"

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	userID, err := s.users.CreateUser(ctx, req.Email, hashed)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if req.BranchID != "" {
		member := models.Member{
			UserID:   userID,
			BranchID: req.BranchID,
			Name:     req.Name,
			Role:     models.RoleMember, // дефолтная роль при регистрации
		}
		if _, err := s.users.CreateMember(ctx, member); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
	}

	s.log.Info("registered new user", slog.String("user_id", userID))
	return userID, nil
}
