package auth

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

func (m *RepoMock) CreateUser(ctx context.Context, email, passwordHash string) (string, error) {
	args := m.Called(ctx, email, passwordHash)
	return args.String(0), args.Error(1)
}
func (m *RepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *RepoMock) GetMemberByUserID(ctx context.Context, userID string) (*models.Member, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}
func (m *RepoMock) ListPermissionTypesByMember(ctx context.Context, memberID string) ([]string, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *RepoMock) GetActivePlanByUser(ctx context.Context, userID string) (*models.Plan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}
func (m *RepoMock) CreateMember(ctx context.Context, member models.Member) (string, error) {
	args := m.Called(ctx, member)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestAuthService_Login_ClaimsSnapshotMember(t *testing.T) {
	hash, err := password.Hash("correct-password")
	require.NoError(t, err)

	repo := new(RepoMock)
	repo.On("GetUserByEmail", mock.Anything, "pastor@example.com").
		Return(&models.User{ID: "user-1", Email: "pastor@example.com", PasswordHash: hash}, nil)
	repo.On("GetMemberByUserID", mock.Anything, "user-1").
		Return(&models.Member{
			ID:       "member-1",
			UserID:   "user-1",
			BranchID: "branch-1",
			Name:     "Pastor John",
			Role:     models.RoleAdminGeral,
		}, nil)
	repo.On("ListPermissionTypesByMember", mock.Anything, "member-1").
		Return([]string{"events_manage", "members_view"}, nil)
	repo.On("GetActivePlanByUser", mock.Anything, "user-1").
		Return(&models.Plan{ID: "plan-1", Name: "growth", MaxMembers: 500, MaxBranches: 5}, nil)

	maker := jwt.NewJWTMaker("test-secret", 7*24*time.Hour)
	svc := New(repo, maker, newNoopLogger())

	result, err := svc.Login(context.Background(), "pastor@example.com", "correct-password")
	require.NoError(t, err)

	assert.Equal(t, "growth", result.User.Plan)
	require.NotNil(t, result.Member)
	assert.Equal(t, models.RoleAdminGeral, result.Member.Role)

	// claims токена должны в точности совпадать с persisted-состоянием участника
	claims, err := maker.ParseToken(result.Token)
	require.NoError(t, err)
	require.NotNil(t, claims.MemberID)
	assert.Equal(t, "member-1", *claims.MemberID)
	assert.Equal(t, models.RoleAdminGeral, *claims.Role)
	assert.Equal(t, "branch-1", *claims.BranchID)
	assert.Equal(t, []string{"events_manage", "members_view"}, claims.Permissions)
	repo.AssertExpectations(t)
}

func TestAuthService_Login_NoMemberProfile_FreePlan(t *testing.T) {
	hash, err := password.Hash("correct-password")
	require.NoError(t, err)

	repo := new(RepoMock)
	repo.On("GetUserByEmail", mock.Anything, "visitor@example.com").
		Return(&models.User{ID: "user-2", Email: "visitor@example.com", PasswordHash: hash}, nil)
	repo.On("GetMemberByUserID", mock.Anything, "user-2").Return(nil, nil)
	repo.On("GetActivePlanByUser", mock.Anything, "user-2").Return(nil, nil)

	svc := New(repo, jwt.NewJWTMaker("test-secret", time.Hour), newNoopLogger())

	result, err := svc.Login(context.Background(), "visitor@example.com", "correct-password")
	require.NoError(t, err)
	assert.Equal(t, models.FreePlanName, result.User.Plan)
	assert.Nil(t, result.Member)
}

func TestAuthService_Login_GenericErrorForBothFailures(t *testing.T) {
	hash, err := password.Hash("correct-password")
	require.NoError(t, err)

	tests := []struct {
		name      string
		email     string
		pass      string
		setupMock func(r *RepoMock)
	}{
		{
			name:  "неизвестный email",
			email: "unknown@example.com",
			pass:  "correct-password",
			setupMock: func(r *RepoMock) {
				r.On("GetUserByEmail", mock.Anything, "unknown@example.com").
					Return(nil, sql.ErrNoRows)
			},
		},
		{
			name:  "неверный пароль",
			email: "pastor@example.com",
			pass:  "wrong-password",
			setupMock: func(r *RepoMock) {
				r.On("GetUserByEmail", mock.Anything, "pastor@example.com").
					Return(&models.User{ID: "user-1", Email: "pastor@example.com", PasswordHash: hash}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			tt.setupMock(repo)
			svc := New(repo, jwt.NewJWTMaker("test-secret", time.Hour), newNoopLogger())

			_, err := svc.Login(context.Background(), tt.email, tt.pass)
			// обе ветки возвращают одну и ту же ошибку
			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Register_WithBranchCreatesMember(t *testing.T) {
	repo := new(RepoMock)
	repo.On("CreateUser", mock.Anything, "new@example.com", mock.Anything).
		Return("user-9", nil)
	repo.On("CreateMember", mock.Anything, mock.MatchedBy(func(m models.Member) bool {
		return m.UserID == "user-9" && m.BranchID == "branch-1" && m.Role == models.RoleMember
	})).Return("member-9", nil)

	svc := New(repo, jwt.NewJWTMaker("test-secret", time.Hour), newNoopLogger())

	userID, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "new@example.com",
		Password: "secret-pass",
		Name:     "New Member",
		BranchID: "branch-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-9", userID)
	repo.AssertExpectations(t)
}
