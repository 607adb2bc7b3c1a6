package models

// ChurchPosition — должность (служение) внутри церкви, назначаемая участникам.
// Дефолтные должности создаются системой и не могут быть удалены.
type ChurchPosition struct {
	ID        string //
	ChurchID  string //
	Name      string //
	IsDefault bool   //
}

// DefaultPositionNames — фиксированный каталог должностей, засеваемых
// для каждой церкви. Сравнение с существующими именами регистронезависимое.
var DefaultPositionNames = []string{
	"Pastor",
	"Co-Pastor",
	"Evangelist",
	"Presbyter",
	"Deacon",
	"Leader",
}

// CreatePositionRequest — входные данные для создания должности.
type CreatePositionRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}
