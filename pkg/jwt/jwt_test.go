package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse(t *testing.T) {
	tok, err := Generate("s3cr3t", "u-1", "Carlos", "technician", "oficina-api", 5)
	require.NoError(t, err)

	claims, err := Parse("s3cr3t", tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "Carlos", claims.Name)
	assert.Equal(t, "technician", claims.Role)
	assert.Equal(t, "oficina-api", claims.Issuer)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := Generate("a", "u-1", "Carlos", "admin", "x", 5)
	require.NoError(t, err)
	_, err = Parse("b", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := Generate("a", "u-1", "Carlos", "admin", "x", -1)
	require.NoError(t, err)
	_, err = Parse("a", tok)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := Generate("", "u", "n", "admin", "x", 5)
	assert.Error(t, err)
	_, err = Parse("", "token")
	assert.Error(t, err)
}
