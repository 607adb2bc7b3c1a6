// Package remove реализует HTTP-обработчик удаления должности.
//
// Удаление запрещено для дефолтных должностей и должностей, на которые
// ссылаются участники; проверки и удаление выполняются одной транзакцией.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/church-management/internal/apperrors"
	"github.com/magabrotheeeer/church-management/internal/http/response"
	"github.com/magabrotheeeer/church-management/internal/lib/sl"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Delete(ctx context.Context, id string) error
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить должность
// @Description Удаляет должность церкви. Дефолтные и используемые участниками должности удалить нельзя.
// @Tags Positions
// @Produce  json
// @Param id path string true "Идентификатор должности"
// @Success 200 {object} map[string]any "Должность удалена"
// @Failure 404 {object} response.ErrorResponse "Должность не найдена"
// @Failure 409 {object} response.ErrorResponse "Должность дефолтная или используется участниками"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /positions/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.position.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			log.Info("position not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("position not found"))
		case errors.Is(err, apperrors.ErrInvariantViolation):
			log.Info("position cannot be deleted", slog.String("id", id))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("position is default or in use"))
		default:
			log.Error("failed to delete position", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not delete position"))
		}
		return
	}

	log.Info("position deleted", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"deleted": id,
	}))
}
