// Package churches реализует HTTP-обработчик списка церквей для админ-панели.
package churches

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/church-management/internal/http/response"
	"github.com/magabrotheeeer/church-management/internal/lib/sl"
	"github.com/magabrotheeeer/church-management/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	ListChurches(ctx context.Context) ([]*models.Church, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.churches"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	churches, err := h.service.ListChurches(r.Context())
	if err != nil {
		log.Error("failed to list churches", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list churches"))
		return
	}

	render.JSON(w, r, response.OKWithData(churches))
}
