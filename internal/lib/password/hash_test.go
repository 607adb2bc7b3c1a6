package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := Hash("super-secret")
	require.NoError(t, err)
	assert.NotEqual(t, "super-secret", hash)

	assert.NoError(t, Compare(hash, "super-secret"))
	assert.Error(t, Compare(hash, "wrong-password"))
}

func TestCompare_InvalidHash(t *testing.T) {
	assert.Error(t, Compare("not-a-bcrypt-hash", "whatever"))
}
