// Package catalog реализует HTTP-обработчик каталога типов разрешений.
//
// Каталог глобален по платформе и доступен только администраторам.
package catalog

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/church-management/internal/http/response"
	"github.com/magabrotheeeer/church-management/internal/lib/sl"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Catalog(ctx context.Context) ([]string, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.permission.catalog"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	types, err := h.service.Catalog(r.Context())
	if err != nil {
		log.Error("failed to load permission catalog", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not load permission catalog"))
		return
	}

	render.JSON(w, r, response.OKWithData(types))
}
