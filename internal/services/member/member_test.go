package member

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/church-management/internal/apperrors"
	"github.com/magabrotheeeer/church-management/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateMember(ctx context.Context, member models.Member) (string, error) {
	args := m.Called(ctx, member)
	return args.String(0), args.Error(1)
}
func (m *RepoMock) GetMember(ctx context.Context, id string) (*models.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}
func (m *RepoMock) ListMembersByBranch(ctx context.Context, branchID string) ([]*models.Member, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Member), args.Error(1)
}
func (m *RepoMock) CountMembersByBranch(ctx context.Context, branchID string) (int, error) {
	args := m.Called(ctx, branchID)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) GetActivePlanByUser(ctx context.Context, userID string) (*models.Plan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}
func (m *RepoMock) GetPlanByName(ctx context.Context, name string) (*models.Plan, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_Create_PlanLimit(t *testing.T) {
	req := models.CreateMemberRequest{
		UserID:   "3f6c2c9d-0000-0000-0000-000000000001",
		BranchID: "3f6c2c9d-0000-0000-0000-000000000002",
		Name:     "Maria Silva",
		Role:     models.RoleMember,
	}

	t.Run("лимит участников тарифа исчерпан", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetActivePlanByUser", mock.Anything, "actor-1").
			Return(&models.Plan{Name: "free", MaxMembers: 10}, nil)
		repo.On("CountMembersByBranch", mock.Anything, req.BranchID).Return(10, nil)

		svc := New(repo, newNoopLogger())
		_, err := svc.Create(context.Background(), "actor-1", req)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvariantViolation)
		repo.AssertNotCalled(t, "CreateMember", mock.Anything, mock.Anything)
	})

	t.Run("лимит не достигнут", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetActivePlanByUser", mock.Anything, "actor-1").
			Return(&models.Plan{Name: "free", MaxMembers: 10}, nil)
		repo.On("CountMembersByBranch", mock.Anything, req.BranchID).Return(3, nil)
		repo.On("CreateMember", mock.Anything, mock.Anything).Return("member-1", nil)

		svc := New(repo, newNoopLogger())
		created, err := svc.Create(context.Background(), "actor-1", req)

		require.NoError(t, err)
		assert.Equal(t, "member-1", created.ID)
		assert.Equal(t, models.RoleMember, created.Role)
	})

	t.Run("без активной подписки действует лимит тарифа free", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetActivePlanByUser", mock.Anything, "actor-1").Return(nil, nil)
		repo.On("GetPlanByName", mock.Anything, models.FreePlanName).
			Return(&models.Plan{Name: models.FreePlanName, MaxMembers: 50}, nil)
		repo.On("CountMembersByBranch", mock.Anything, req.BranchID).Return(50, nil)

		svc := New(repo, newNoopLogger())
		_, err := svc.Create(context.Background(), "actor-1", req)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvariantViolation)
		repo.AssertNotCalled(t, "CreateMember", mock.Anything, mock.Anything)
	})
}

func TestService_Read_NotFound(t *testing.T) {
	repo := new(RepoMock)
	repo.On("GetMember", mock.Anything, "missing").Return(nil, sql.ErrNoRows)

	svc := New(repo, newNoopLogger())
	_, err := svc.Read(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
