// Package create реализует HTTP-обработчик создания филиала.
//
// Перед созданием проверяется лимит филиалов активного тарифа пользователя.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/church-management/internal/apperrors"
	"github.com/magabrotheeeer/church-management/internal/http/middlewarectx"
	"github.com/magabrotheeeer/church-management/internal/http/response"
	"github.com/magabrotheeeer/church-management/internal/lib/sl"
	"github.com/magabrotheeeer/church-management/internal/models"
)

// Handler обрабатывает HTTP-запросы на создание филиала.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания филиала.
type Service interface {
	Create(ctx context.Context, userID string, req models.CreateBranchRequest) (*models.Branch, error)
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
// @Summary Создать филиал
// @Description Создает филиал церкви. Количество филиалов ограничено тарифом.
// @Tags Branches
// @Accept  json
// @Produce  json
// @Param request body models.CreateBranchRequest true "Данные нового филиала"
// @Success 201 {object} map[string]any "Филиал создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 409 {object} response.ErrorResponse "Лимит филиалов тарифа исчерпан"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /branches [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.branch.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreateBranchRequest
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

	userID, ok := r.Context().Value(middlewarectx.UserID).(string)
	if !ok || userID == "" {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error(apperrors.ErrUnauthorized.Error()))
		return
	}

	branch, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvariantViolation) {
			log.Info("branch limit reached", slog.String("church_id", req.ChurchID))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("plan branch limit reached"))
			return
		}
		log.Error("failed to create branch", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create branch"))
		return
	}

	log.Info("branch created", slog.String("id", branch.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(branch))
}
