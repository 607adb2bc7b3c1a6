// Package upload реализует HTTP-обработчик загрузки изображений.
//
// Один обработчик обслуживает три маршрута: аватары участников, логотипы
// церквей и изображения событий. Файл принимается multipart-полем "file",
// ограничен 5 МБ, тип определяется по содержимому (jpeg, png, webp).
package upload

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/church-management/internal/apperrors"
	"github.com/magabrotheeeer/church-management/internal/http/response"
	"github.com/magabrotheeeer/church-management/internal/lib/sl"
	uploadsvc "github.com/magabrotheeeer/church-management/internal/services/upload"
)

// Handler обрабатывает HTTP-запросы на загрузку изображений.
type Handler struct {
	log     *slog.Logger
	service Service
	kind    string // подкаталог загрузок: avatars, churches или events
}

// Service описывает интерфейс сохранения загружаемых файлов.
type Service interface {
	Save(file multipart.File, header *multipart.FileHeader, kind string) (string, error)
}

// New создает новый Handler для заданного вида загрузки.
func New(log *slog.Logger, service Service, kind string) *Handler {
	return &Handler{
		log:     log,
		service: service,
		kind:    kind,
	}
}

// ServeHTTP godoc
// @Summary Загрузить изображение
// @Description Принимает multipart-файл до 5 МБ (jpeg, png, webp) и возвращает его URL.
// @Tags Uploads
// @Accept  multipart/form-data
// @Produce  json
// @Param file formData file true "Изображение"
// @Success 200 {object} map[string]any "URL загруженного файла"
// @Failure 400 {object} response.ErrorResponse "Файл отсутствует или слишком велик"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /upload/avatar [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.upload"

	log := h.log.With(
		slog.String("op", op),
		slog.String("kind", h.kind),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	r.Body = http.MaxBytesReader(w, r.Body, uploadsvc.MaxFileSize+4096)
	if err := r.ParseMultipartForm(uploadsvc.MaxFileSize); err != nil {
		log.Error("failed to parse multipart form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("file is missing or too large"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Error("form file missing", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("file field is required"))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	url, err := h.service.Save(file, header, h.kind)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvariantViolation) {
			log.Info("upload rejected", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("file must be a jpeg, png or webp up to 5MB"))
			return
		}
		log.Error("failed to save upload", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not save file"))
		return
	}

	log.Info("upload saved", slog.String("url", url))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"url": url,
	}))
}
