// Package summary реализует HTTP-обработчик финансовой сводки филиала:
// сумма приходов, сумма расходов и сальдо вместе со списком транзакций.
package summary

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
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
	Summary(ctx context.Context, branchID string) (*models.FinanceSummary, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.finance.summary"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	branchID := chi.URLParam(r, "branchID")
	result, err := h.service.Summary(r.Context(), branchID)
	if err != nil {
		log.Error("failed to build finance summary", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not build summary"))
		return
	}

	render.JSON(w, r, response.OKWithData(result))
}
