package models

// Роли администраторов платформы. Администраторы — отдельный тип
// принципала, не пересекающийся с User/Member.
const (
	AdminRoleSuperadmin = "SUPERADMIN"
	AdminRoleSupport    = "SUPPORT"
	AdminRoleFinance    = "FINANCE"
)

// AdminUser — оператор платформы.
type AdminUser struct {
	ID           string //
	Email        string //
	PasswordHash string //
	Role         string // SUPERADMIN, SUPPORT или FINANCE
}

// AdminLoginRequest — входные данные для авторизации администратора.
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
