package finance

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/church-management/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateTransaction(ctx context.Context, tx models.Transaction) (int, error) {
	args := m.Called(ctx, tx)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ListTransactionsByBranch(ctx context.Context, branchID string) ([]*models.Transaction, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
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

func TestService_Summary(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	cache.On("Get", mock.Anything, mock.Anything).Return(false, nil)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	repo.On("ListTransactionsByBranch", mock.Anything, "branch-1").
		Return([]*models.Transaction{
			{ID: 3, Type: models.TransactionEntry, Amount: 50},
			{ID: 2, Type: models.TransactionExit, Amount: 30},
			{ID: 1, Type: models.TransactionEntry, Amount: 100},
		}, nil)

	svc := New(repo, cache, newNoopLogger())

	summary, err := svc.Summary(context.Background(), "branch-1")
	require.NoError(t, err)
	assert.Equal(t, 150.0, summary.Entries)
	assert.Equal(t, 30.0, summary.Exits)
	assert.Equal(t, 120.0, summary.Total)
	assert.Len(t, summary.Transactions, 3)
}

func TestService_Summary_EmptyBranch(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	cache.On("Get", mock.Anything, mock.Anything).Return(false, nil)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	repo.On("ListTransactionsByBranch", mock.Anything, "branch-2").
		Return([]*models.Transaction{}, nil)

	svc := New(repo, cache, newNoopLogger())

	summary, err := svc.Summary(context.Background(), "branch-2")
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.Entries)
	assert.Equal(t, 0.0, summary.Exits)
	assert.Equal(t, 0.0, summary.Total)
}

func TestService_CreateTransaction(t *testing.T) {
	tests := []struct {
		name      string
		req       models.CreateTransactionRequest
		setupMock func(r *RepoMock, c *CacheMock)
		wantErr   bool
	}{
		{
			name: "успешное создание",
			req: models.CreateTransactionRequest{
				Title:  "Sunday offering",
				Amount: 250.50,
				Type:   models.TransactionEntry,
			},
			setupMock: func(r *RepoMock, c *CacheMock) {
				r.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(tx models.Transaction) bool {
					return tx.BranchID == "branch-1" && tx.Amount == 250.50 && tx.Category == nil
				})).Return(7, nil).Once()
				c.On("Invalidate", "finance:summary:branch-1").Return(nil).Once()
			},
		},
		{
			name: "отрицательная сумма",
			req: models.CreateTransactionRequest{
				Title:  "Broken",
				Amount: -10,
				Type:   models.TransactionEntry,
			},
			setupMock: func(_ *RepoMock, _ *CacheMock) {},
			wantErr:   true,
		},
		{
			name: "нулевая сумма",
			req: models.CreateTransactionRequest{
				Title:  "Broken",
				Amount: 0,
				Type:   models.TransactionExit,
			},
			setupMock: func(_ *RepoMock, _ *CacheMock) {},
			wantErr:   true,
		},
		{
			name: "неизвестный тип",
			req: models.CreateTransactionRequest{
				Title:  "Broken",
				Amount: 10,
				Type:   "TRANSFER",
			},
			setupMock: func(_ *RepoMock, _ *CacheMock) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			cache := new(CacheMock)
			tt.setupMock(repo, cache)

			svc := New(repo, cache, newNoopLogger())
			tx, err := svc.CreateTransaction(context.Background(), "branch-1", tt.req)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 7, tx.ID)
			}
			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}
