package models

// Church — церковь, корневой тенант платформы. Владеет филиалами.
type Church struct {
	ID        string  //
	Name      string  //
	AvatarURL *string // Относительный URL загруженного логотипа
}

// CreateChurchRequest — входные данные для создания церкви.
type CreateChurchRequest struct {
	Name string `json:"name" validate:"required,min=2,max=150"`
}
