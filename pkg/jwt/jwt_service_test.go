package jwt

import (
	"testing"
	"time"

	"github.com/Om136/rentals/domain"
	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseTokenUser(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser("42", domain.RoleUser)
	require.NotEmpty(t, token)

	userID, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", userID)
	assert.Equal(t, domain.RoleUser, role)
}

func TestGetUserIDByTokenGarbage(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetUserIDByTokenWrongKey(t *testing.T) {
	service := NewJWTService()

	claims := jwtUserClaim{
		UserID: "42",
		Role:   domain.RoleUser,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    "RENTALS",
		},
	}
	forged, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).
		SignedString([]byte("some-other-key"))
	require.NoError(t, err)

	_, _, err = service.GetUserIDByToken(forged)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetUserIDByTokenExpired(t *testing.T) {
	service := NewJWTService().(*jwtService)

	claims := jwtUserClaim{
		UserID: "42",
		Role:   domain.RoleUser,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
			Issuer:    service.issuer,
			IssuedAt:  gojwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).
		SignedString([]byte(service.secretKey))
	require.NoError(t, err)

	_, _, err = service.GetUserIDByToken(expired)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
