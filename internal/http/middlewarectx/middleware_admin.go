package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/church-management/internal/apperrors"
	"github.com/magabrotheeeer/church-management/internal/http/response"
	"github.com/magabrotheeeer/church-management/internal/lib/jwt"
	"github.com/magabrotheeeer/church-management/internal/lib/sl"
)

const (
	// AdminID — ключ для идентификатора администратора в контексте.
	AdminID Key = "admin_id"
	// AdminRole — ключ для роли администратора в контексте.
	AdminRole Key = "admin_role"
)

// AdminMiddleware проверяет админский токен в заголовке Authorization.
// Отсутствие или невалидность токена дает 401 до любых проверок роли.
func AdminMiddleware(maker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AdminMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := maker.ParseAdminToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired admin token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			if claims.AdminID == "" {
				log.Error("token carries no admin principal")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			ctx := context.WithValue(r.Context(), AdminID, claims.AdminID)
			ctx = context.WithValue(ctx, AdminRole, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdminRoles пропускает запрос только для перечисленных ролей
// администратора. Порядок проверок строгий: сначала наличие принципала
// (иначе 401), затем роль (иначе 403).
func RequireAdminRoles(log *slog.Logger, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := r.Context().Value(AdminRole).(string)
			if !ok || role == "" {
				log.Error("admin principal missing")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(apperrors.ErrUnauthorized.Error()))
				return
			}
			if !slices.Contains(roles, role) {
				log.Error("admin role not allowed", slog.String("role", role))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error(apperrors.ErrForbidden.Error()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
