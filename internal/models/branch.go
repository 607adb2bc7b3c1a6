package models

// Branch — филиал церкви, основная единица изоляции данных:
// участники, события, транзакции и девоционалы привязаны к филиалу.
type Branch struct {
	ID         string //
	ChurchID   string //
	Name       string //
	PastorName string //
}

// BranchWithChurch — филиал вместе с данными своей церкви,
// используется в списках.
type BranchWithChurch struct {
	Branch Branch `json:"branch"`
	Church Church `json:"church"`
}

// CreateBranchRequest — входные данные для создания филиала.
type CreateBranchRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=150"`
	PastorName string `json:"pastorName" validate:"required,min=2,max=100"`
	ChurchID   string `json:"churchId" validate:"required,uuid"`
}
