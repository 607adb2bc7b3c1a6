package models

import "time"

// Devotional — девоционал (духовное чтение), опубликованный в филиале.
type Devotional struct {
	ID          string    //
	BranchID    string    //
	Title       string    //
	Body        string    //
	PublishedAt time.Time //
}

// CreateDevotionalRequest — входные данные для публикации девоционала.
type CreateDevotionalRequest struct {
	Title string `json:"title" validate:"required,min=2,max=150"`
	Body  string `json:"body" validate:"required,min=1"`
}
