package position

import (
	"context"
	"fmt"
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

func (m *RepoMock) CreatePosition(ctx context.Context, churchID, name string, isDefault bool) (string, error) {
	args := m.Called(ctx, churchID, name, isDefault)
	return args.String(0), args.Error(1)
}
func (m *RepoMock) ListPositionsByChurch(ctx context.Context, churchID string) ([]*models.ChurchPosition, error) {
	args := m.Called(ctx, churchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ChurchPosition), args.Error(1)
}
func (m *RepoMock) DeletePositionGuarded(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *RepoMock) SeedDefaultPositions(ctx context.Context, churchID string, names []string) (int, error) {
	args := m.Called(ctx, churchID, names)
	return args.Int(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_SeedDefaults_PassesCatalog(t *testing.T) {
	repo := new(RepoMock)
	repo.On("SeedDefaultPositions", mock.Anything, "church-1", models.DefaultPositionNames).
		Return(6, nil).Once()
	repo.On("SeedDefaultPositions", mock.Anything, "church-1", models.DefaultPositionNames).
		Return(0, nil).Once()

	svc := New(repo, newNoopLogger())

	created, err := svc.SeedDefaults(context.Background(), "church-1")
	require.NoError(t, err)
	assert.Equal(t, 6, created)

	// повторный засев ничего не создает
	created, err = svc.SeedDefaults(context.Background(), "church-1")
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	repo.AssertExpectations(t)
}

func TestService_Delete_PropagatesGuardErrors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{
			name:    "должность не найдена",
			repoErr: fmt.Errorf("storage.DeletePositionGuarded: %w", apperrors.ErrNotFound),
			wantErr: apperrors.ErrNotFound,
		},
		{
			name:    "дефолтная должность",
			repoErr: fmt.Errorf("storage.DeletePositionGuarded: %w", apperrors.ErrInvariantViolation),
			wantErr: apperrors.ErrInvariantViolation,
		},
		{
			name:    "успешное удаление",
			repoErr: nil,
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			repo.On("DeletePositionGuarded", mock.Anything, "position-1").Return(tt.repoErr)

			svc := New(repo, newNoopLogger())
			err := svc.Delete(context.Background(), "position-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_Create(t *testing.T) {
	repo := new(RepoMock)
	repo.On("CreatePosition", mock.Anything, "church-1", "Worship Leader", false).
		Return("position-9", nil)

	svc := New(repo, newNoopLogger())

	pos, err := svc.Create(context.Background(), "church-1", "Worship Leader")
	require.NoError(t, err)
	assert.Equal(t, "position-9", pos.ID)
	assert.False(t, pos.IsDefault)
}
