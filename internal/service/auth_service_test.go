package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growlink/internal/config"
	"growlink/internal/models"
)

func testAuthService() AuthService {
	cfg := &config.Config{
		JWTSecretKey:        "test-secret-key",
		AccessTokenDuration: 8 * time.Hour,
	}
	return NewAuthService(nil, cfg)
}

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := testAuthService()

	user := &models.User{
		ID:       "user-123",
		UserName: "alice",
		Role:     "speaker",
	}

	tokenString, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-123", claims["id"])
	assert.Equal(t, "alice", claims["user_name"])
	assert.Equal(t, "speaker", claims["role"])

	// срок жизни 8 часов от момента выдачи
	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().Add(8*time.Hour).Unix(), int64(exp), 5)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := testAuthService()

	otherCfg := &config.Config{
		JWTSecretKey:        "other-secret",
		AccessTokenDuration: 8 * time.Hour,
	}
	otherSvc := NewAuthService(nil, otherCfg)

	tokenString, err := otherSvc.GenerateAccessToken(&models.User{ID: "u", UserName: "n", Role: "user"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := testAuthService()

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
