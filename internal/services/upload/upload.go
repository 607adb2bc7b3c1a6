// Package upload содержит валидацию и сохранение загружаемых изображений.
package upload

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/church-management/internal/apperrors"
)

// MaxFileSize — максимальный размер загружаемого файла в байтах (5 МБ).
const MaxFileSize = 5 << 20

// Виды загрузок. Каждый вид сохраняется в собственный подкаталог.
const (
	KindAvatar     = "avatars"
	KindChurchLogo = "churches"
	KindEventImage = "events"
)

// Разрешенные MIME-типы и их расширения. Тип определяется по содержимому,
// а не по имени файла.
var allowedExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Service сохраняет изображения на диск и возвращает публичные URL.
type Service struct {
	baseDir string
	log     *slog.Logger
}

// New создает новый Service. baseDir — корневой каталог загрузок.
func New(baseDir string, log *slog.Logger) *Service {
	return &Service{
		baseDir: baseDir,
		log:     log,
	}
}

// Save валидирует и сохраняет изображение из multipart-формы.
// Возвращает относительный URL вида /uploads/<kind>/<имя файла>.
func (s *Service) Save(file multipart.File, header *multipart.FileHeader, kind string) (string, error) {
	const op = "upload.Save"

	if header.Size > MaxFileSize {
		return "", fmt.Errorf("%s: file exceeds 5MB limit: %w", op, apperrors.ErrInvariantViolation)
	}

	// Для сниффинга типа достаточно первых 512 байт.
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	contentType := http.DetectContentType(head[:n])
	ext, ok := allowedExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("%s: unsupported file type %q: %w", op, contentType, apperrors.ErrInvariantViolation)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	dir := filepath.Join(s.baseDir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), shortRandom(), ext)
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = dst.Close()
	}()

	// LimitReader страхует от расхождения header.Size с фактическим телом.
	written, err := io.Copy(dst, io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if written > MaxFileSize {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("%s: file exceeds 5MB limit: %w", op, apperrors.ErrInvariantViolation)
	}

	s.log.Info("saved upload",
		slog.String("kind", kind),
		slog.String("name", name),
		slog.Int64("size", written))

	return "/uploads/" + kind + "/" + name, nil
}

func shortRandom() string {
	return strings.Split(uuid.NewString(), "-")[0]
}
