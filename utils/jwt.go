package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/JaniDhruv/EduResolve/models"
)

// GenerateJWT issues a session token for an authenticated user. The token
// carries the user id only; role and department are re-read from storage on
// every request so stale claims cannot widen access.
func GenerateJWT(user *models.User, secret []byte, expiresInHours int) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.UserID,
		"exp":     now.Add(time.Duration(expiresInHours) * time.Hour).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
