// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
//
// Claims фиксируют снимок состояния участника (member) на момент выдачи токена:
// роль, филиал и список разрешений не перечитываются из базы до истечения токена.
package jwt

import "github.com/golang-jwt/jwt/v5"

// UserClaims описывает данные пользователя и его участника, хранящиеся в JWT.
type UserClaims struct {
	UserID               string   `json:"user_id"`
	Email                string   `json:"email"`
	MemberID             *string  `json:"member_id,omitempty"` // nil, если у пользователя нет профиля участника
	Role                 *string  `json:"role,omitempty"`
	BranchID             *string  `json:"branch_id,omitempty"`
	Permissions          []string `json:"permissions"`
	jwt.RegisteredClaims          // стандартные claims (ExpiresAt, IssuedAt, Subject)
}

// AdminClaims описывает данные администратора платформы.
// Администраторы — отдельный тип принципала, их токены не взаимозаменяемы
// с пользовательскими.
type AdminClaims struct {
	AdminID              string `json:"admin_id"`
	Email                string `json:"email"`
	Role                 string `json:"role"`
	jwt.RegisteredClaims        //
}
