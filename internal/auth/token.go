// Package auth handles JWT access token generation and validation
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/confiance888/BlogMagment/internal/models"
)

// Claims is the identity embedded in an access token
type Claims struct {
	UserID   int
	Username string
	Roles    []models.Role
}

// TokenGenerator issues and validates signed access tokens
type TokenGenerator struct {
	secret            string
	accessTokenExpiry time.Duration
}

// NewTokenGenerator creates a new token generator
func NewTokenGenerator(secret string, accessExpiry time.Duration) *TokenGenerator {
	return &TokenGenerator{
		secret:            secret,
		accessTokenExpiry: accessExpiry,
	}
}

// GenerateAccessToken creates a signed token with the username as subject and
// the user id and roles as claims, expiring after the configured duration.
func (tg *TokenGenerator) GenerateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":     user.Username,
		"user_id": user.ID,
		"roles":   models.RoleNames(user.Roles),
		"exp":     time.Now().Add(tg.accessTokenExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tg.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// ValidateAccessToken validates an access token and returns the embedded claims
func (tg *TokenGenerator) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tg.secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	username, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("subject not found in token")
	}

	// JWT claims decode numbers as float64
	userIDFloat, ok := mapClaims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("user_id not found in token")
	}

	rawRoles, ok := mapClaims["roles"].([]any)
	if !ok {
		return nil, fmt.Errorf("roles not found in token")
	}
	roles := make([]models.Role, 0, len(rawRoles))
	for _, rawRole := range rawRoles {
		name, ok := rawRole.(string)
		if !ok {
			return nil, fmt.Errorf("invalid role claim")
		}
		roles = append(roles, models.Role(name))
	}

	return &Claims{
		UserID:   int(userIDFloat),
		Username: username,
		Roles:    roles,
	}, nil
}
