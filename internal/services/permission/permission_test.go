package permission

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) ListDistinctPermissionTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *RepoMock) InsertPermissions(ctx context.Context, memberID string, types []string) (int, error) {
	args := m.Called(ctx, memberID, types)
	return args.Int(0), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}
func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_Assign_Idempotent(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	// первый вызов вставляет строку, второй — нет
	repo.On("InsertPermissions", mock.Anything, "member-1", []string{"members_view"}).
		Return(1, nil).Once()
	repo.On("InsertPermissions", mock.Anything, "member-1", []string{"members_view"}).
		Return(0, nil).Once()
	cache.On("Invalidate", catalogCacheKey).Return(nil).Once()

	svc := New(repo, cache, newNoopLogger())

	added, err := svc.Assign(context.Background(), "member-1", []string{"members_view"})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	added, err = svc.Assign(context.Background(), "member-1", []string{"members_view"})
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestService_Catalog_UsesCache(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	cache.On("Get", catalogCacheKey, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(1).(*[]string)
			*out = []string{"events_manage", "members_view"}
		}).
		Return(true, nil).Once()

	svc := New(repo, cache, newNoopLogger())

	types, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"events_manage", "members_view"}, types)
	repo.AssertNotCalled(t, "ListDistinctPermissionTypes", mock.Anything)
}

func TestService_Catalog_FallsBackToStorage(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	cache.On("Get", catalogCacheKey, mock.Anything).Return(false, nil).Once()
	repo.On("ListDistinctPermissionTypes", mock.Anything).
		Return([]string{"finance_manage"}, nil).Once()
	cache.On("Set", catalogCacheKey, []string{"finance_manage"}, 5*time.Minute).
		Return(nil).Once()

	svc := New(repo, cache, newNoopLogger())

	types, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"finance_manage"}, types)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}
