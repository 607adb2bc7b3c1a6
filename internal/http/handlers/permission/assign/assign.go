// Package assign реализует HTTP-обработчик выдачи разрешений участнику.
//
// Операция идемпотентна: уже выданные разрешения пропускаются,
// возвращается количество действительно добавленных.
package assign

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/church-management/internal/http/response"
	"github.com/magabrotheeeer/church-management/internal/lib/sl"
	"github.com/magabrotheeeer/church-management/internal/models"
)

// Handler обрабатывает HTTP-запросы на выдачу разрешений.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики разрешений.
type Service interface {
	Assign(ctx context.Context, memberID string, types []string) (int, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Выдать разрешения участнику
// @Description Идемпотентно выдает участнику набор разрешений, возвращает количество добавленных.
// @Tags Permissions
// @Accept  json
// @Produce  json
// @Param request body models.AssignPermissionsRequest true "Участник и список типов разрешений"
// @Success 200 {object} map[string]any "Количество добавленных разрешений"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /permissions/assign [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.permission.assign"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.AssignPermissionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	added, err := h.service.Assign(r.Context(), req.MemberID, req.Types)
	if err != nil {
		log.Error("failed to assign permissions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not assign permissions"))
		return
	}

	log.Info("permissions assigned", slog.String("member_id", req.MemberID), slog.Int("added", added))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"added": added,
	}))
}
