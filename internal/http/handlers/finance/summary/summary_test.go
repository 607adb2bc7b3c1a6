package summary

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/church-management/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Summary(ctx context.Context, branchID string) (*models.FinanceSummary, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FinanceSummary), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestSummaryHandler_ServeHTTP(t *testing.T) {
	svc := new(ServiceMock)
	svc.On("Summary", mock.Anything, "branch-1").Return(&models.FinanceSummary{
		Entries:      150,
		Exits:        30,
		Total:        120,
		Transactions: []*models.Transaction{},
	}, nil)

	router := chi.NewRouter()
	router.Get("/finance/{branchID}/transactions/summary", New(newNoopLogger(), svc).ServeHTTP)

	req := httptest.NewRequest(http.MethodGet, "/finance/branch-1/transactions/summary", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data models.FinanceSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(150), resp.Data.Entries)
	assert.Equal(t, float64(30), resp.Data.Exits)
	assert.Equal(t, float64(120), resp.Data.Total)
}
