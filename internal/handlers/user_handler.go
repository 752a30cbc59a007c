package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/confiance888/BlogMagment/internal/apperrors"
	"github.com/confiance888/BlogMagment/internal/models"
)

// UserService is the interface that wraps methods for user business logic
type UserService interface {
	// Method Register creates a new user account with the default USER role
	// and returns its public projection.
	//
	// A duplicate email or username fails with an already-exists error.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error)
	// Method GetByID returns the public projection of a user, failing with a
	// not-found error when the user does not exist.
	GetByID(ctx context.Context, userID int) (*models.UserResponse, error)
	// Method Delete hard-deletes a user without cascading to authored
	// content, failing with a not-found error when the user does not exist.
	Delete(ctx context.Context, userID int) error
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	BaseHandler
	userService UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: BaseHandler{Logger: logger},
		userService: userService,
	}
}

// RegisterRoutes registers all user handler routes. Deleting users is gated
// to admins by the supplied middlewares.
func (h *UserHandler) RegisterRoutes(r chi.Router, requireAuth, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Get("/{id}", h.GetByID)
		r.With(requireAuth, requireAdmin).Delete("/{id}", h.Delete)
	})
}

// Register handles POST /users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, r, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		h.RespondError(w, r, err)
		return
	}

	resp, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		h.RespondError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, resp)
}

// GetByID handles GET /users/{id}
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		h.RespondError(w, r, err)
		return
	}

	resp, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		h.RespondError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /users/{id} (admin only)
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		h.RespondError(w, r, err)
		return
	}

	if err := h.userService.Delete(r.Context(), userID); err != nil {
		h.RespondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// userIDParam parses the numeric {id} path parameter
func userIDParam(r *http.Request) (int, error) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, apperrors.BadRequest("invalid user id")
	}
	return userID, nil
}
