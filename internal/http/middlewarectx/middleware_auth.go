// Package middlewarectx содержит HTTP middleware платформы: проверку JWT
// пользователей, проверку админских токенов и ограничение частоты запросов.
//
// JWTMiddleware проверяет наличие и валидность JWT токена в заголовке
// Authorization и кладет в контекст снимок состояния участника из claims.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/church-management/internal/http/response"
	"github.com/magabrotheeeer/church-management/internal/lib/jwt"
	"github.com/magabrotheeeer/church-management/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserID — ключ для идентификатора пользователя в контексте.
	UserID Key = "user_id"
	// Email — ключ для email пользователя в контексте.
	Email Key = "email"
	// MemberID — ключ для идентификатора участника; пустая строка, если профиля нет.
	MemberID Key = "member_id"
	// Role — ключ для роли участника в контексте.
	Role Key = "role"
	// BranchID — ключ для филиала участника в контексте.
	BranchID Key = "branch_id"
	// Permissions — ключ для списка разрешений участника в контексте.
	Permissions Key = "permissions"
)

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке
// Authorization. Если токен валиден, добавляет данные claims в контекст,
// иначе возвращает 401 Unauthorized.
func JWTMiddleware(maker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

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

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			if claims.UserID == "" {
				log.Error("token carries no user principal")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			ctx := context.WithValue(r.Context(), UserID, claims.UserID)
			ctx = context.WithValue(ctx, Email, claims.Email)
			ctx = context.WithValue(ctx, MemberID, deref(claims.MemberID))
			ctx = context.WithValue(ctx, Role, deref(claims.Role))
			ctx = context.WithValue(ctx, BranchID, deref(claims.BranchID))
			ctx = context.WithValue(ctx, Permissions, claims.Permissions)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
