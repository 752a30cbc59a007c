package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/confiance888/BlogMagment/internal/apperrors"
	"github.com/confiance888/BlogMagment/internal/models"
)

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name         string
		request      *models.RegisterRequest
		setupRepo    func(*mockUserRepository)
		expectedKind apperrors.Kind
	}{
		{
			name: "success",
			request: &models.RegisterRequest{
				Username: "alice",
				Email:    "Alice@Example.com",
				Password: "password123",
			},
			setupRepo: func(repo *mockUserRepository) {},
		},
		{
			name: "duplicate email",
			request: &models.RegisterRequest{
				Username: "alice",
				Email:    "taken@example.com",
				Password: "password123",
			},
			setupRepo: func(repo *mockUserRepository) {
				repo.existsByEmailResult = true
			},
			expectedKind: apperrors.KindAlreadyExists,
		},
		{
			name: "duplicate username",
			request: &models.RegisterRequest{
				Username: "taken",
				Email:    "alice@example.com",
				Password: "password123",
			},
			setupRepo: func(repo *mockUserRepository) {
				repo.existsByUsernameResult = true
			},
			expectedKind: apperrors.KindAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{users: map[int]*models.User{}}
			tt.setupRepo(repo)
			service := NewUserService(repo, zap.NewNop())

			resp, err := service.Register(context.Background(), tt.request)

			if tt.expectedKind != apperrors.KindInternal {
				require.Error(t, err)
				assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, resp.ID)
			assert.Equal(t, "alice", resp.Username)
			assert.Equal(t, "alice@example.com", resp.Email)
			assert.False(t, resp.CreatedAt.IsZero())

			require.NotNil(t, repo.created)
			assert.Equal(t, []models.Role{models.RoleUser}, repo.created.Roles)
			assert.NotEqual(t, tt.request.Password, repo.created.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte(tt.request.Password)))
		})
	}
}

func TestUserService_GetByID(t *testing.T) {
	repo := &mockUserRepository{users: map[int]*models.User{
		1: {
			ID:           1,
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "hash",
			Roles:        []models.Role{models.RoleUser},
			CreatedAt:    time.Now().UTC(),
		},
	}}
	service := NewUserService(repo, zap.NewNop())

	resp, err := service.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "alice@example.com", resp.Email)

	_, err = service.GetByID(context.Background(), 99)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestUserService_Delete(t *testing.T) {
	repo := &mockUserRepository{users: map[int]*models.User{
		1: {ID: 1, Username: "alice"},
	}}
	service := NewUserService(repo, zap.NewNop())

	require.NoError(t, service.Delete(context.Background(), 1))
	assert.Empty(t, repo.users)

	err := service.Delete(context.Background(), 1)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
