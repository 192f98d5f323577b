package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mstrelkov/jewelstock/internal/models"
)

var testSecret = []byte("test-secret")

func TestSignAndParse(t *testing.T) {
	id := uuid.New()

	token, err := SignAccessToken(id, models.RoleManager, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := AccessClaimsFromToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, models.RoleManager, claims.Role)

	parsed, err := claims.UserID()
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := SignAccessToken(uuid.New(), models.RoleAdmin, testSecret)
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(token, []byte("other-secret"))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenRejected(t *testing.T) {
	claims := AccessClaims{
		Role: models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(token, testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedTokenRejected(t *testing.T) {
	_, err := AccessClaimsFromToken("not-a-token", testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestUnknownRoleRejected(t *testing.T) {
	claims := AccessClaims{
		Role: models.Role("superuser"),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(token, testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}
