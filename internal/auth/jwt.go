package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL bounds how long an issued token stays valid.
const tokenTTL = 24 * time.Hour

var (
	ErrNoSecret     = errors.New("JWT_SECRET not set")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the token payload: who the caller is and what they may do.
type Claims struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func signingSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrNoSecret
	}
	return []byte(secret), nil
}

// GenerateToken issues an HS256 token for the user.
func GenerateToken(userID, email, role string) (string, error) {
	return generateTokenWithTTL(userID, email, role, tokenTTL)
}

func generateTokenWithTTL(userID, email, role string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("cannot issue a token without a user id")
	}

	secret, err := signingSecret()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ValidateToken verifies the signature and expiry and returns the
// caller's identity.
func ValidateToken(tokenString string) (string, string, string, error) {
	secret, err := signingSecret()
	if err != nil {
		return "", "", "", err
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", "", ErrInvalidToken
	}

	return claims.UserID, claims.Email, claims.Role, nil
}
