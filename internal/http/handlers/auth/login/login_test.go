package login

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/church-management/internal/apperrors"
	"github.com/magabrotheeeer/church-management/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoginResult), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func doLogin(t *testing.T, handler http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	logger := newNoopLogger()

	t.Run("успешный вход", func(t *testing.T) {
		svc := new(ServiceMock)
		svc.On("Login", mock.Anything, "pastor@example.com", "password123").Return(&models.LoginResult{
			Token: "jwt-token",
			User:  models.UserView{ID: "user-1", Email: "pastor@example.com", Plan: "free"},
		}, nil)

		rec := doLogin(t, New(logger, svc), models.LoginRequest{
			Email:    "pastor@example.com",
			Password: "password123",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Status string `json:"status"`
			Data   struct {
				Token string `json:"token"`
				User  struct {
					Plan string `json:"plan"`
				} `json:"user"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "OK", resp.Status)
		assert.Equal(t, "jwt-token", resp.Data.Token)
		assert.Equal(t, "free", resp.Data.User.Plan)
	})

	t.Run("одинаковое тело ответа для неизвестного email и неверного пароля", func(t *testing.T) {
		svc := new(ServiceMock)
		svc.On("Login", mock.Anything, "ghost@example.com", "password123").
			Return(nil, apperrors.ErrInvalidCredentials)
		svc.On("Login", mock.Anything, "pastor@example.com", "wrongpassword").
			Return(nil, apperrors.ErrInvalidCredentials)
		handler := New(logger, svc)

		recUnknown := doLogin(t, handler, models.LoginRequest{
			Email:    "ghost@example.com",
			Password: "password123",
		})
		recWrongPass := doLogin(t, handler, models.LoginRequest{
			Email:    "pastor@example.com",
			Password: "wrongpassword",
		})

		assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
		assert.Equal(t, http.StatusUnauthorized, recWrongPass.Code)
		assert.JSONEq(t, recUnknown.Body.String(), recWrongPass.Body.String())
	})

	t.Run("невалидный json", func(t *testing.T) {
		svc := new(ServiceMock)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("not a json")))
		rec := httptest.NewRecorder()

		New(logger, svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ошибка валидации полей", func(t *testing.T) {
		svc := new(ServiceMock)
		rec := doLogin(t, New(logger, svc), models.LoginRequest{Email: "not-an-email", Password: "123"})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})
}
