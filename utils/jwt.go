package utils

import (
	"errors"
	"time"

	"slotwise/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "slotwise-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT for an org admin. The org claim scopes
// every authenticated request to a single tenant.
func GenerateToken(adminID, orgID, email string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   adminID,
		"org":   orgID,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractAdminFromToken returns the admin ID and org ID carried by a valid
// token.
func ExtractAdminFromToken(tokenString string) (adminID, orgID string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}
	adminID, ok = claims["sub"].(string)
	if !ok || adminID == "" {
		return "", "", errors.New("token does not contain a valid 'sub' claim")
	}
	orgID, ok = claims["org"].(string)
	if !ok || orgID == "" {
		return "", "", errors.New("token does not contain a valid 'org' claim")
	}
	return adminID, orgID, nil
}
