package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/confiance888/BlogMagment/internal/apperrors"
	"github.com/confiance888/BlogMagment/internal/auth"
	"github.com/confiance888/BlogMagment/internal/models"
)

// authService verifies credentials against the user store and issues access tokens
type authService struct {
	userRepo       UserRepository
	tokenGenerator *auth.TokenGenerator
	logger         *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokenGenerator *auth.TokenGenerator, logger *zap.Logger) *authService {
	return &authService{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

// Login authenticates a user by username and password and returns a signed
// access token with the user's public identity. Bad credentials always map to
// the same generic message, never revealing which field was wrong.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.Unauthenticated("invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthenticated("invalid username or password")
	}

	accessToken, err := s.tokenGenerator.GenerateAccessToken(user)
	if err != nil {
		s.logger.Error("failed to generate access token", zap.Int("user_id", user.ID), zap.Error(err))
		return nil, err
	}

	return &models.AuthResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Roles:       models.RoleNames(user.Roles),
	}, nil
}
