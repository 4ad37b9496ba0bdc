package utils

import (
	"errors"
	"time"

	"morisbiz/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "morisbiz-dev"
	}
	return []byte(secret)
}

// GenerateAdminToken creates a signed JWT for an authenticated admin.
// The token expires after the specified duration.
func GenerateAdminToken(adminID, email string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   adminID,
		"email": email,
		"admin": true,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateAdminToken parses a token string and returns its claims when the
// signature checks out and the admin claim is present.
func ValidateAdminToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if isAdmin, _ := claims["admin"].(bool); !isAdmin {
		return nil, errors.New("not an admin token")
	}
	return claims, nil
}
