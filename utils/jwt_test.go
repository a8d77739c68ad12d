package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaniDhruv/EduResolve/models"
)

func TestGenerateJWT(t *testing.T) {
	secret := []byte("test-secret")
	user := &models.User{UserID: 42, Role: models.RoleTeacher}

	tokenString, err := GenerateJWT(user, secret, 24)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.NotNil(t, claims["exp"])
}

func TestGenerateJWTWrongSecretFails(t *testing.T) {
	user := &models.User{UserID: 42}

	tokenString, err := GenerateJWT(user, []byte("secret-a"), 24)
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	})
	assert.Error(t, err)
}
