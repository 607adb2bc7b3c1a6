// Package login реализует HTTP-обработчик авторизации администратора платформы.
//
// Администраторы — отдельный тип принципала: их токены не взаимозаменяемы
// с пользовательскими. Неизвестный email и неверный пароль дают один ответ 401.
package login

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
	"github.com/magabrotheeeer/church-management/internal/http/response"
	"github.com/magabrotheeeer/church-management/internal/lib/sl"
	"github.com/magabrotheeeer/church-management/internal/models"
	adminsvc "github.com/magabrotheeeer/church-management/internal/services/admin"
)

// Handler обрабатывает HTTP-запросы на авторизацию администратора.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики администраторов.
type Service interface {
	Login(ctx context.Context, email, password string) (*adminsvc.LoginResult, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.AdminLoginRequest
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

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			log.Info("admin login rejected", slog.String("email", req.Email))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error(apperrors.ErrInvalidCredentials.Error()))
			return
		}
		log.Error("admin login failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	log.Info("admin login success", slog.String("admin_id", result.ID))
	render.JSON(w, r, response.OKWithData(result))
}
