package remove

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/church-management/internal/apperrors"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRemoveHandler_ServeHTTP(t *testing.T) {
	logger := newNoopLogger()

	tests := []struct {
		name           string
		serviceErr     error
		wantStatusCode int
	}{
		{
			name:           "успешное удаление",
			serviceErr:     nil,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "должность не найдена",
			serviceErr:     apperrors.ErrNotFound,
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "дефолтная или используемая должность",
			serviceErr:     apperrors.ErrInvariantViolation,
			wantStatusCode: http.StatusConflict,
		},
		{
			name:           "внутренняя ошибка",
			serviceErr:     assert.AnError,
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			svc.On("Delete", mock.Anything, "pos-1").Return(tt.serviceErr)

			router := chi.NewRouter()
			router.Delete("/positions/{id}", New(logger, svc).ServeHTTP)

			req := httptest.NewRequest(http.MethodDelete, "/positions/pos-1", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
