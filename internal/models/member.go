package models

// Роли участника внутри филиала.
const (
	RoleAdminGeral = "ADMINGERAL"
	RoleMember     = "MEMBER"
)

// Member — профиль пользователя внутри конкретного филиала.
// Именно участник несёт роль, должность и набор разрешений.
type Member struct {
	ID         string  // Уникальный идентификатор (uuid)
	UserID     string  // Владелец профиля
	BranchID   string  // Филиал, к которому привязан участник
	PositionID *string // Должность в церкви, может отсутствовать
	Name       string  //
	Role       string  // ADMINGERAL или MEMBER
}

// CreateMemberRequest — входные данные для создания участника.
type CreateMemberRequest struct {
	UserID     string `json:"user_id" validate:"required,uuid"`
	BranchID   string `json:"branch_id" validate:"required,uuid"`
	PositionID string `json:"position_id" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Role       string `json:"role" validate:"required,oneof=ADMINGERAL MEMBER"`
}
