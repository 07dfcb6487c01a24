package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateJWT_RoundTrip(t *testing.T) {
	t.Parallel()

	firmado, err := GenerateJWT(42, true, "clave-de-prueba", 15)
	require.NoError(t, err)

	claims, err := ValidateJWT(firmado, "clave-de-prueba")
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UserID)
	require.True(t, claims.Superuser)
	require.Equal(t, "picklefree", claims.Issuer)
}

func TestValidateJWT_ClaveIncorrecta(t *testing.T) {
	t.Parallel()

	firmado, err := GenerateJWT(42, false, "clave-buena", 15)
	require.NoError(t, err)

	_, err = ValidateJWT(firmado, "clave-mala")
	require.Error(t, err)
}

func TestValidateJWT_Caducado(t *testing.T) {
	t.Parallel()

	firmado, err := GenerateJWT(42, false, "clave-de-prueba", -1)
	require.NoError(t, err)

	_, err = ValidateJWT(firmado, "clave-de-prueba")
	require.Error(t, err)
	require.Contains(t, err.Error(), "expired")
}

func TestValidateJWT_Vacio(t *testing.T) {
	t.Parallel()

	_, err := ValidateJWT("", "clave-de-prueba")
	require.Error(t, err)
}

func TestGenerateRefreshToken_SinSuperuser(t *testing.T) {
	t.Parallel()

	firmado, err := GenerateRefreshToken(7, "clave-de-prueba", 30)
	require.NoError(t, err)

	claims, err := ValidateJWT(firmado, "clave-de-prueba")
	require.NoError(t, err)
	require.Equal(t, uint(7), claims.UserID)
	require.False(t, claims.Superuser)
}
