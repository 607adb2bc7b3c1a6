// Package create реализует HTTP-обработчик создания финансовой транзакции.
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

// Handler обрабатывает HTTP-запросы на создание транзакции.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики финансов.
type Service interface {
	CreateTransaction(ctx context.Context, branchID string, req models.CreateTransactionRequest) (*models.Transaction, error)
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
// @Summary Создать транзакцию
// @Description Создает финансовую транзакцию филиала (приход или расход, сумма строго положительная).
// @Tags Finance
// @Accept  json
// @Produce  json
// @Param branchID path string true "Идентификатор филиала"
// @Param request body models.CreateTransactionRequest true "Данные транзакции"
// @Success 201 {object} map[string]any "Транзакция создана"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "Нарушение бизнес-правила"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /finance/{branchID}/transactions [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.finance.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreateTransactionRequest
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
	transaction, err := h.service.CreateTransaction(r.Context(), branchID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvariantViolation) {
			log.Info("transaction rejected", slog.String("branch_id", branchID))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("invalid transaction"))
			return
		}
		log.Error("failed to create transaction", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create transaction"))
		return
	}

	log.Info("transaction created", slog.Int("id", transaction.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(transaction))
}
