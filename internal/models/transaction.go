package models

import "time"

// Типы финансовых записей.
const (
	TransactionEntry = "ENTRY"
	TransactionExit  = "EXIT"
)

// Transaction — финансовая запись (приход или расход) филиала.
type Transaction struct {
	ID        int       //
	BranchID  string    //
	Title     string    //
	Amount    float64   // Строго положительная сумма
	Type      string    // ENTRY или EXIT
	Category  *string   //
	CreatedAt time.Time //
}

// CreateTransactionRequest — входные данные для создания транзакции.
type CreateTransactionRequest struct {
	Title    string  `json:"title" validate:"required,min=2,max=150"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Type     string  `json:"type" validate:"required,oneof=ENTRY EXIT"`
	Category string  `json:"category" validate:"omitempty,max=100"`
}

// FinanceSummary — агрегат по транзакциям филиала: сумма приходов,
// сумма расходов и сальдо, вместе с исходным списком.
type FinanceSummary struct {
	Entries      float64        `json:"entries"`
	Exits        float64        `json:"exits"`
	Total        float64        `json:"total"`
	Transactions []*Transaction `json:"transactions"`
}
