package models

import "time"

// Event — событие филиала (богослужение, собрание, конференция).
type Event struct {
	ID          string    //
	BranchID    string    //
	Title       string    //
	Description string    //
	StartsAt    time.Time //
	ImageURL    *string   //
}

// CreateEventRequest — входные данные для создания события.
// Дата приходит строкой в формате RFC3339 и парсится сервисом.
type CreateEventRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=150"`
	Description string `json:"description" validate:"max=2000"`
	StartsAt    string `json:"starts_at" validate:"required"`
	ImageURL    string `json:"image_url" validate:"omitempty,max=500"`
}

// EventReminder — сообщение пайплайна уведомлений: участник филиала
// и событие, которое начинается завтра.
type EventReminder struct {
	Email      string    `json:"email"`
	MemberName string    `json:"member_name"`
	EventTitle string    `json:"event_title"`
	BranchName string    `json:"branch_name"`
	StartsAt   time.Time `json:"starts_at"`
}
