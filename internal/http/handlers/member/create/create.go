// Package create реализует HTTP-обработчик создания участника.
//
// Перед созданием проверяется лимит участников активного тарифа пользователя.
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

// Handler обрабатывает HTTP-запросы на создание участника.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания участника.
type Service interface {
	Create(ctx context.Context, actorUserID string, req models.CreateMemberRequest) (*models.Member, error)
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
// @Summary Создать участника
// @Description Создает профиль участника в филиале. Количество участников ограничено тарифом.
// @Tags Members
// @Accept  json
// @Produce  json
// @Param request body models.CreateMemberRequest true "Данные нового участника"
// @Success 201 {object} map[string]any "Участник создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 409 {object} response.ErrorResponse "Лимит участников тарифа исчерпан"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /members [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreateMemberRequest
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

	member, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvariantViolation) {
			log.Info("member limit reached", slog.String("branch_id", req.BranchID))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("plan member limit reached"))
			return
		}
		log.Error("failed to create member", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create member"))
		return
	}

	log.Info("member created", slog.String("id", member.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(member))
}
