// Package create реализует HTTP-обработчик регистрации пожертвования.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/church-management/internal/apperrors"
	"github.com/magabrotheeeer/church-management/internal/http/response"
	"github.com/magabrotheeeer/church-management/internal/lib/sl"
	"github.com/magabrotheeeer/church-management/internal/models"
)

// Handler обрабатывает HTTP-запросы на регистрацию пожертвования.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики пожертвований.
type Service interface {
	Create(ctx context.Context, branchID string, req models.CreateContributionRequest) (*models.Contribution, error)
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
	const op = "handlers.contribution.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreateContributionRequest
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

	branchID := chi.URLParam(r, "branchID")
	contribution, err := h.service.Create(r.Context(), branchID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvariantViolation) {
			log.Info("contribution rejected", slog.String("branch_id", branchID))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("invalid contribution"))
			return
		}
		log.Error("failed to create contribution", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create contribution"))
		return
	}

	log.Info("contribution created", slog.Int("id", contribution.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(contribution))
}
