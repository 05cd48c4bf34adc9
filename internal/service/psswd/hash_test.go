package psswd

import (
	"strings"
	"testing"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	var hasher PasswordHash

	hash, err := hasher.HashPassword("secret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)

	assert.True(t, hasher.ComparePassword("secret-password", hash))
	assert.False(t, hasher.ComparePassword("wrong", hash))
}

func TestPasswordHashTooLong(t *testing.T) {
	var hasher PasswordHash

	// 36 кириллических букв - 72 байта, на границе.
	_, err := hasher.HashPassword(strings.Repeat("ж", MaxPasswordBytes/2))
	require.NoError(t, err)

	_, err = hasher.HashPassword(strings.Repeat("ж", MaxPasswordBytes/2) + "a")
	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "password", valErr.Field)
}
