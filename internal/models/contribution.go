package models

import "time"

// Contribution — пожертвование участника (или анонимное) в филиале.
type Contribution struct {
	ID        int       //
	BranchID  string    //
	MemberID  *string   // nil для анонимного пожертвования
	Amount    float64   // Строго положительная сумма
	Note      string    //
	CreatedAt time.Time //
}

// CreateContributionRequest — входные данные для регистрации пожертвования.
type CreateContributionRequest struct {
	MemberID string  `json:"member_id" validate:"omitempty,uuid"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Note     string  `json:"note" validate:"max=500"`
}
