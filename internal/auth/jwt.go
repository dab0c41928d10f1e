package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hintyu/PLAIGROUND-wishmoa/internal/config"
)

var (
	jwtSecret string
	tokenTTL  time.Duration
)

// Init stores the token settings for the process.
func Init(cfg config.AuthConfig) {
	jwtSecret = cfg.JWTSecret
	ttl := cfg.TokenTTLHours
	if ttl <= 0 {
		ttl = 168
	}
	tokenTTL = time.Duration(ttl) * time.Hour
}

// GenerateJWT issues a session token for a user.
func GenerateJWT(userID string, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// VerifyJWT parses a session token and returns the user id claim.
func VerifyJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("invalid user id in token claims")
	}

	return userID, nil
}
