package admin

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/church-management/internal/apperrors"
	"github.com/magabrotheeeer/church-management/internal/lib/jwt"
	"github.com/magabrotheeeer/church-management/internal/lib/password"
	"github.com/magabrotheeeer/church-management/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}
func (m *RepoMock) ListChurches(ctx context.Context) ([]*models.Church, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Church), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_Login(t *testing.T) {
	maker := jwt.NewJWTMaker("test-secret", time.Hour)
	hash, err := password.Hash("correct-password")
	require.NoError(t, err)

	admin := &models.AdminUser{
		ID:           "admin-1",
		Email:        "ops@example.com",
		PasswordHash: hash,
		Role:         models.AdminRoleSuperadmin,
	}

	t.Run("успешный вход возвращает админский токен", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetAdminByEmail", mock.Anything, admin.Email).Return(admin, nil)

		svc := New(repo, maker, newNoopLogger())
		result, err := svc.Login(context.Background(), admin.Email, "correct-password")

		require.NoError(t, err)
		claims, err := maker.ParseAdminToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", claims.AdminID)
		assert.Equal(t, models.AdminRoleSuperadmin, claims.Role)
	})

	t.Run("одинаковая ошибка для неизвестного email и неверного пароля", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetAdminByEmail", mock.Anything, "ghost@example.com").Return(nil, sql.ErrNoRows)
		repo.On("GetAdminByEmail", mock.Anything, admin.Email).Return(admin, nil)

		svc := New(repo, maker, newNoopLogger())

		_, errUnknown := svc.Login(context.Background(), "ghost@example.com", "whatever")
		_, errWrongPass := svc.Login(context.Background(), admin.Email, "wrong-password")

		assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPass, apperrors.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	})
}
