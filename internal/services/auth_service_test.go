package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shoplist/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthService(expiry time.Duration) *AuthService {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: expiry}
	return NewAuthService(NewUsersService(nil), cfg)
}

func TestGenerateAndDecodeToken(t *testing.T) {
	t.Parallel()

	svc := testAuthService(4 * time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := svc.DecodeToken(token)
	require.NotNil(t, claims)
	assert.Equal(t, userID.String(), claims.UserID)
}

func TestGenerateTokenExpiry(t *testing.T) {
	t.Parallel()

	svc := testAuthService(4 * time.Hour)

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	claims := svc.DecodeToken(token)
	require.NotNil(t, claims)

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 4*time.Hour, lifetime)
}

func TestGeneratedTokenVerifiesWithSecret(t *testing.T) {
	t.Parallel()

	svc := testAuthService(time.Hour)

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	_, err = jwt.ParseWithClaims(token, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	require.Error(t, err)
}

func TestDecodeTokenIgnoresExpiry(t *testing.T) {
	t.Parallel()

	svc := testAuthService(-time.Minute)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)

	// Decode is a pure parse; the expired window is the verifier's problem.
	claims := svc.DecodeToken(token)
	require.NotNil(t, claims)
	assert.Equal(t, userID.String(), claims.UserID)
}

func TestDecodeTokenMalformed(t *testing.T) {
	t.Parallel()

	svc := testAuthService(time.Hour)

	assert.Nil(t, svc.DecodeToken(""))
	assert.Nil(t, svc.DecodeToken("not.a.jwt"))
	assert.Nil(t, svc.DecodeToken("garbage"))
}
