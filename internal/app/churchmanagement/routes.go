// Package churchmanagement предоставляет маршруты основного приложения.
package churchmanagement

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/church-management/internal/config"
	adminchurches "github.com/magabrotheeeer/church-management/internal/http/handlers/admin/churches"
	adminlogin "github.com/magabrotheeeer/church-management/internal/http/handlers/admin/login"
	"github.com/magabrotheeeer/church-management/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/church-management/internal/http/handlers/auth/register"
	branchcreate "github.com/magabrotheeeer/church-management/internal/http/handlers/branch/create"
	branchlist "github.com/magabrotheeeer/church-management/internal/http/handlers/branch/list"
	branchread "github.com/magabrotheeeer/church-management/internal/http/handlers/branch/read"
	churchcreate "github.com/magabrotheeeer/church-management/internal/http/handlers/church/create"
	churchlist "github.com/magabrotheeeer/church-management/internal/http/handlers/church/list"
	contributioncreate "github.com/magabrotheeeer/church-management/internal/http/handlers/contribution/create"
	contributionlist "github.com/magabrotheeeer/church-management/internal/http/handlers/contribution/list"
	devotionalcreate "github.com/magabrotheeeer/church-management/internal/http/handlers/devotional/create"
	devotionallist "github.com/magabrotheeeer/church-management/internal/http/handlers/devotional/list"
	eventcreate "github.com/magabrotheeeer/church-management/internal/http/handlers/event/create"
	eventlist "github.com/magabrotheeeer/church-management/internal/http/handlers/event/list"
	financecreate "github.com/magabrotheeeer/church-management/internal/http/handlers/finance/create"
	financelist "github.com/magabrotheeeer/church-management/internal/http/handlers/finance/list"
	financesummary "github.com/magabrotheeeer/church-management/internal/http/handlers/finance/summary"
	"github.com/magabrotheeeer/church-management/internal/http/handlers/health"
	membercreate "github.com/magabrotheeeer/church-management/internal/http/handlers/member/create"
	memberlist "github.com/magabrotheeeer/church-management/internal/http/handlers/member/list"
	memberread "github.com/magabrotheeeer/church-management/internal/http/handlers/member/read"
	permissionassign "github.com/magabrotheeeer/church-management/internal/http/handlers/permission/assign"
	permissioncatalog "github.com/magabrotheeeer/church-management/internal/http/handlers/permission/catalog"
	positioncreate "github.com/magabrotheeeer/church-management/internal/http/handlers/position/create"
	positionlist "github.com/magabrotheeeer/church-management/internal/http/handlers/position/list"
	positionremove "github.com/magabrotheeeer/church-management/internal/http/handlers/position/remove"
	positionseed "github.com/magabrotheeeer/church-management/internal/http/handlers/position/seed"
	uploadhandler "github.com/magabrotheeeer/church-management/internal/http/handlers/upload"
	"github.com/magabrotheeeer/church-management/internal/http/middlewarectx"
	"github.com/magabrotheeeer/church-management/internal/lib/jwt"
	"github.com/magabrotheeeer/church-management/internal/models"
	uploadservice "github.com/magabrotheeeer/church-management/internal/services/upload"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, jwtMaker jwt.Maker, services *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	limiter := rate.NewLimiter(50, 100)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/login", login.New(logger, services.Auth).ServeHTTP)
		r.Post("/auth/register", register.New(logger, services.Auth).ServeHTTP)
		r.Post("/admin/login", adminlogin.New(logger, services.Admin).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией пользователей
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))

			r.Post("/churches", churchcreate.New(logger, services.Church).ServeHTTP)
			r.Get("/churches", churchlist.New(logger, services.Church).ServeHTTP)

			r.Post("/branches", branchcreate.New(logger, services.Branch).ServeHTTP)
			r.Get("/branches/branches", branchlist.New(logger, services.Branch).ServeHTTP)
			r.Get("/branches/branches/{id}", branchread.New(logger, services.Branch).ServeHTTP)

			r.Post("/members", membercreate.New(logger, services.Member).ServeHTTP)
			r.Get("/members/branch/{branchID}", memberlist.New(logger, services.Member).ServeHTTP)
			r.Get("/members/{id}", memberread.New(logger, services.Member).ServeHTTP)

			r.Post("/finance/{branchID}/transactions", financecreate.New(logger, services.Finance).ServeHTTP)
			r.Get("/finance/{branchID}/transactions", financelist.New(logger, services.Finance).ServeHTTP)
			r.Get("/finance/{branchID}/transactions/summary", financesummary.New(logger, services.Finance).ServeHTTP)

			r.Post("/churches/{churchID}/positions", positioncreate.New(logger, services.Position).ServeHTTP)
			r.Get("/churches/{churchID}/positions", positionlist.New(logger, services.Position).ServeHTTP)
			r.Post("/churches/{churchID}/positions/seed-defaults", positionseed.New(logger, services.Position).ServeHTTP)
			r.Delete("/positions/{id}", positionremove.New(logger, services.Position).ServeHTTP)

			r.Post("/permissions/assign", permissionassign.New(logger, services.Permission).ServeHTTP)

			r.Post("/branches/{branchID}/events", eventcreate.New(logger, services.Event).ServeHTTP)
			r.Get("/branches/{branchID}/events", eventlist.New(logger, services.Event).ServeHTTP)

			r.Post("/branches/{branchID}/contributions", contributioncreate.New(logger, services.Contribution).ServeHTTP)
			r.Get("/branches/{branchID}/contributions", contributionlist.New(logger, services.Contribution).ServeHTTP)

			r.Post("/branches/{branchID}/devotionals", devotionalcreate.New(logger, services.Devotional).ServeHTTP)
			r.Get("/branches/{branchID}/devotionals", devotionallist.New(logger, services.Devotional).ServeHTTP)

			r.Post("/upload/avatar", uploadhandler.New(logger, services.Upload, uploadservice.KindAvatar).ServeHTTP)
			r.Post("/upload/church-avatar", uploadhandler.New(logger, services.Upload, uploadservice.KindChurchLogo).ServeHTTP)
			r.Post("/upload/event-image", uploadhandler.New(logger, services.Upload, uploadservice.KindEventImage).ServeHTTP)
		})

		// Админская группа: сначала наличие принципала (401), затем роль (403)
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AdminMiddleware(jwtMaker, logger))
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireAdminRoles(logger, models.AdminRoleSuperadmin, models.AdminRoleSupport))
				r.Get("/admin/churches", adminchurches.New(logger, services.Admin).ServeHTTP)
				r.Get("/permissions/catalog", permissioncatalog.New(logger, services.Permission).ServeHTTP)
			})
		})
	})

	// Статика загруженных файлов
	fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
	r.Get("/uploads/*", fs.ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
