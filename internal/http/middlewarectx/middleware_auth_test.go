package middlewarectx_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/church-management/internal/apperrors"
	"github.com/magabrotheeeer/church-management/internal/http/middlewarectx"
	"github.com/magabrotheeeer/church-management/internal/lib/jwt"
	"github.com/magabrotheeeer/church-management/internal/models"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestJWTMiddleware(t *testing.T) {
	maker := jwt.NewJWTMaker("test-secret", time.Hour)
	logger := newNoopLogger()

	memberID := "member-1"
	role := models.RoleAdminGeral
	branchID := "branch-1"
	token, err := maker.GenerateToken(jwt.UserClaims{
		UserID:      "user-1",
		Email:       "pastor@example.com",
		MemberID:    &memberID,
		Role:        &role,
		BranchID:    &branchID,
		Permissions: []string{"finance.read"},
	})
	require.NoError(t, err)

	t.Run("валидный токен кладет claims в контекст", func(t *testing.T) {
		var gotUserID, gotMemberID, gotRole string
		var gotPerms []string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserID, _ = r.Context().Value(middlewarectx.UserID).(string)
			gotMemberID, _ = r.Context().Value(middlewarectx.MemberID).(string)
			gotRole, _ = r.Context().Value(middlewarectx.Role).(string)
			gotPerms, _ = r.Context().Value(middlewarectx.Permissions).([]string)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		middlewarectx.JWTMiddleware(maker, logger)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", gotUserID)
		assert.Equal(t, "member-1", gotMemberID)
		assert.Equal(t, models.RoleAdminGeral, gotRole)
		assert.Equal(t, []string{"finance.read"}, gotPerms)
	})

	t.Run("отсутствующий заголовок дает 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()

		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
		middlewarectx.JWTMiddleware(maker, logger)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("админский токен не проходит как пользовательский", func(t *testing.T) {
		adminToken, err := maker.GenerateAdminToken("admin-1", "root@example.com", models.AdminRoleSuperadmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rec := httptest.NewRecorder()

		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
		middlewarectx.JWTMiddleware(maker, logger)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("токен с чужой подписью дает 401", func(t *testing.T) {
		otherMaker := jwt.NewJWTMaker("other-secret", time.Hour)
		otherToken, err := otherMaker.GenerateToken(jwt.UserClaims{UserID: "user-1", Email: "x@example.com"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+otherToken)
		rec := httptest.NewRecorder()

		middlewarectx.JWTMiddleware(maker, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminMiddleware_OrderOfChecks(t *testing.T) {
	maker := jwt.NewJWTMaker("test-secret", time.Hour)
	logger := newNoopLogger()

	supportToken, err := maker.GenerateAdminToken("admin-1", "support@example.com", models.AdminRoleSupport)
	require.NoError(t, err)

	protected := func() http.Handler {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		gate := middlewarectx.RequireAdminRoles(logger, models.AdminRoleSuperadmin)
		auth := middlewarectx.AdminMiddleware(maker, logger)
		return auth(gate(next))
	}()

	t.Run("без токена 401, а не 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("валидный токен с недостаточной ролью дает 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+supportToken)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), apperrors.ErrForbidden.Error())
	})

	t.Run("проверка роли без принципала дает 401", func(t *testing.T) {
		gate := middlewarectx.RequireAdminRoles(logger, models.AdminRoleSuperadmin)
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		rec := httptest.NewRecorder()
		gate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), apperrors.ErrUnauthorized.Error())
	})

	t.Run("пользовательский токен не проходит как админский", func(t *testing.T) {
		userToken, err := maker.GenerateToken(jwt.UserClaims{UserID: "user-1", Email: "u@example.com"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+userToken)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
