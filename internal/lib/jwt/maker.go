package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken выдает пользовательский токен со снимком состояния участника.
	GenerateToken(claims UserClaims) (string, error)
	// ParseToken проверяет подпись и валидность пользовательского токена.
	ParseToken(tokenStr string) (*UserClaims, error)
	// GenerateAdminToken выдает токен администратора платформы.
	GenerateAdminToken(adminID, email, role string) (string, error)
	// ParseAdminToken проверяет подпись и валидность токена администратора.
	ParseAdminToken(tokenStr string) (*AdminClaims, error)
}

// MakerImpl реализует Maker на основе секретного ключа и времени жизни токена.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewJWTMaker создаёт новый MakerImpl с секретным ключом и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}

// GenerateToken создает JWT токен с переданными claims, подписывая его секретным ключом.
// Subject выставляется равным идентификатору пользователя, срок жизни — tokenTTL.
func (j *MakerImpl) GenerateToken(claims UserClaims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenTTL)),
	}
	if claims.Permissions == nil {
		claims.Permissions = []string{}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken парсит пользовательский JWT токен и возвращает UserClaims,
// если токен корректен и не истёк.
func (j *MakerImpl) ParseToken(tokenStr string) (*UserClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &UserClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}

// GenerateAdminToken создает JWT токен администратора платформы.
func (j *MakerImpl) GenerateAdminToken(adminID, email, role string) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		AdminID: adminID,
		Email:   email,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseAdminToken парсит токен администратора и возвращает AdminClaims.
func (j *MakerImpl) ParseAdminToken(tokenStr string) (*AdminClaims, error) {
	const op = "jwt.ParseAdminToken"
	token, err := jwt.ParseWithClaims(tokenStr, &AdminClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
