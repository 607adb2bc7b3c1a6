package models

// Permission — именованное разрешение, выданное участнику.
// Пара (member_id, type) уникальна.
type Permission struct {
	ID       int    //
	MemberID string //
	Type     string // Свободный строковый тег, например members_view
}

// AssignPermissionsRequest — входные данные массовой выдачи разрешений.
// Уже существующие пары молча пропускаются.
type AssignPermissionsRequest struct {
	MemberID string   `json:"memberId" validate:"required,uuid"`
	Types    []string `json:"types" validate:"required,min=1,dive,min=1,max=100"`
}
