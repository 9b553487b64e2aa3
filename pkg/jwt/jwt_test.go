package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/EmployeePortal-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "employee-portal-test"
)

func sampleClaims() pkgjwt.SessionClaims {
	return pkgjwt.SessionClaims{
		SessionID: "11111111-1111-1111-1111-111111111111",
		UserID:    "00000000-0000-0000-0000-000000000001",
		Email:     "admin@example.com",
		Role:      "Admin",
	}
}

func TestGenerateAndParse_ConservaClaims(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, sampleClaims(), time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", claims.SessionID)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "Admin", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
}

func TestGenerate_SinTTLNoExpira(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, sampleClaims(), 0)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt, "sin ttl la expiración la decide el servidor")
}

func TestGenerate_RechazaSecretOSesionVacios(t *testing.T) {
	_, err := pkgjwt.Generate("", testIssuer, sampleClaims(), time.Hour)
	assert.Error(t, err)

	c := sampleClaims()
	c.SessionID = ""
	_, err = pkgjwt.Generate(testSecret, testIssuer, c, time.Hour)
	assert.Error(t, err)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, sampleClaims(), time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_TokenExpirado(t *testing.T) {
	c := sampleClaims()
	c.RegisteredClaims = gojwt.RegisteredClaims{
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, c).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_AlgoritmoNone(t *testing.T) {
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, sampleClaims()).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token sin firma no debe aceptarse")
}

func TestParse_Malformado(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}
