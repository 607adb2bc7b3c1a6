// Package seed реализует HTTP-обработчик засева дефолтных должностей церкви.
//
// Операция идемпотентна: уже существующие (без учета регистра) должности
// не дублируются, возвращается количество созданных.
package seed

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
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
	SeedDefaults(ctx context.Context, churchID string) (int, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.position.seed"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	churchID := chi.URLParam(r, "churchID")
	created, err := h.service.SeedDefaults(r.Context(), churchID)
	if err != nil {
		log.Error("failed to seed default positions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not seed default positions"))
		return
	}

	log.Info("default positions seeded", slog.String("church_id", churchID), slog.Int("created", created))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"created": created,
	}))
}
