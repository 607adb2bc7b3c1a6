package assign

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

	"github.com/magabrotheeeer/church-management/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Assign(ctx context.Context, memberID string, types []string) (int, error) {
	args := m.Called(ctx, memberID, types)
	return args.Int(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func doAssign(t *testing.T, svc Service, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/permissions/assign", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	New(newNoopLogger(), svc).ServeHTTP(rec, req)
	return rec
}

func TestAssignHandler_ServeHTTP(t *testing.T) {
	memberID := "3f6c2c9d-0000-0000-0000-000000000001"

	t.Run("возвращает количество добавленных", func(t *testing.T) {
		svc := new(ServiceMock)
		svc.On("Assign", mock.Anything, memberID, []string{"finance.read", "members.write"}).Return(2, nil)

		rec := doAssign(t, svc, models.AssignPermissionsRequest{
			MemberID: memberID,
			Types:    []string{"finance.read", "members.write"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Data struct {
				Added int `json:"added"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Data.Added)
	})

	t.Run("повторная выдача возвращает ноль", func(t *testing.T) {
		svc := new(ServiceMock)
		svc.On("Assign", mock.Anything, memberID, []string{"finance.read"}).Return(0, nil)

		rec := doAssign(t, svc, models.AssignPermissionsRequest{
			MemberID: memberID,
			Types:    []string{"finance.read"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Data struct {
				Added int `json:"added"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Data.Added)
	})

	t.Run("пустой список типов дает 422", func(t *testing.T) {
		svc := new(ServiceMock)
		rec := doAssign(t, svc, models.AssignPermissionsRequest{MemberID: memberID, Types: []string{}})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		svc.AssertNotCalled(t, "Assign", mock.Anything, mock.Anything, mock.Anything)
	})
}
