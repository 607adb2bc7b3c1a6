// Package models содержит доменные структуры платформы и DTO входящих запросов.
//
// Структуры-запросы валидируются через go-playground/validator на уровне
// HTTP-обработчиков, доменные структуры используются бизнес-логикой и хранилищем.
package models

import "time"

// User представляет учётную запись с логином и паролем.
// У пользователя может быть не более одного профиля участника (Member).
type User struct {
	ID           string    // Уникальный идентификатор (uuid)
	Email        string    // Электронная почта (уникальная)
	PasswordHash string    // bcrypt-хэш пароля
	CreatedAt    time.Time //
}

// LoginRequest — входные данные для авторизации.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterRequest — входные данные для регистрации пользователя.
// BranchID опционален: при его наличии сразу создаётся профиль участника.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	BranchID string `json:"branch_id" validate:"omitempty,uuid"`
}

// UserView — представление пользователя в ответе авторизации.
// Plan — имя активного тарифа, "free" при отсутствии подписки.
type UserView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Plan  string `json:"plan"`
}

// MemberView — представление участника в ответе авторизации.
type MemberView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	BranchID    string   `json:"branch_id"`
	Permissions []string `json:"permissions"`
}

// LoginResult — результат успешной авторизации.
type LoginResult struct {
	Token  string      `json:"token"`
	User   UserView    `json:"user"`
	Member *MemberView `json:"member,omitempty"`
}
