// Package apperrors содержит базовые ошибки доменного уровня.
//
// Сервисы возвращают эти ошибки (обычно обёрнутыми через fmt.Errorf с %w),
// а HTTP-обработчики сопоставляют их со статус-кодами через errors.Is.
package apperrors

import "errors"

var (
	// ErrNotFound — запрошенный ресурс не существует. Маппится в 404.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials — неверный email или пароль. Сообщение намеренно
	// одинаковое для несуществующего пользователя и неверного пароля. Маппится в 401.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvariantViolation — нарушение бизнес-правила (например, удаление
	// дефолтной должности). Маппится в 409.
	ErrInvariantViolation = errors.New("invariant violation")
	// ErrForbidden — у принципала нет нужной роли или разрешения. Маппится в 403.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthorized — отсутствует или невалиден принципал запроса. Маппится в 401.
	ErrUnauthorized = errors.New("unauthorized")
)
