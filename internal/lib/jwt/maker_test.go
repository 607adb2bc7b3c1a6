package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestMaker_GenerateAndParseToken(t *testing.T) {
	maker := NewJWTMaker("test-secret", 7*24*time.Hour)

	in := UserClaims{
		UserID:      "user-1",
		Email:       "pastor@example.com",
		MemberID:    strPtr("member-1"),
		Role:        strPtr("ADMINGERAL"),
		BranchID:    strPtr("branch-1"),
		Permissions: []string{"members_view", "events_manage"},
	}
	tokenStr, err := maker.GenerateToken(in)
	require.NoError(t, err)

	claims, err := maker.ParseToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "pastor@example.com", claims.Email)
	require.NotNil(t, claims.MemberID)
	assert.Equal(t, "member-1", *claims.MemberID)
	assert.Equal(t, []string{"members_view", "events_manage"}, claims.Permissions)
}

func TestMaker_GenerateToken_NoMemberProfile(t *testing.T) {
	maker := NewJWTMaker("test-secret", time.Hour)

	tokenStr, err := maker.GenerateToken(UserClaims{
		UserID: "user-2",
		Email:  "visitor@example.com",
	})
	require.NoError(t, err)

	claims, err := maker.ParseToken(tokenStr)
	require.NoError(t, err)
	assert.Nil(t, claims.MemberID)
	assert.Nil(t, claims.Role)
	assert.Nil(t, claims.BranchID)
	assert.Equal(t, []string{}, claims.Permissions)
}

func TestMaker_ParseToken_Expired(t *testing.T) {
	maker := NewJWTMaker("test-secret", -time.Minute)

	tokenStr, err := maker.GenerateToken(UserClaims{UserID: "user-3", Email: "a@b.c"})
	require.NoError(t, err)

	_, err = maker.ParseToken(tokenStr)
	assert.Error(t, err)
}

func TestMaker_ParseToken_WrongSecret(t *testing.T) {
	maker := NewJWTMaker("secret-one", time.Hour)
	other := NewJWTMaker("secret-two", time.Hour)

	tokenStr, err := maker.GenerateToken(UserClaims{UserID: "user-4", Email: "a@b.c"})
	require.NoError(t, err)

	_, err = other.ParseToken(tokenStr)
	assert.Error(t, err)
}

func TestMaker_AdminToken(t *testing.T) {
	maker := NewJWTMaker("test-secret", time.Hour)

	tokenStr, err := maker.GenerateAdminToken("admin-1", "ops@example.com", "SUPERADMIN")
	require.NoError(t, err)

	claims, err := maker.ParseAdminToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "SUPERADMIN", claims.Role)

	// пользовательский парсер не должен принимать админский токен как валидный набор claims
	userClaims, err := maker.ParseToken(tokenStr)
	require.NoError(t, err)
	assert.Empty(t, userClaims.UserID)
}
