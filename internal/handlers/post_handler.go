package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/confiance888/BlogMagment/internal/apperrors"
	"github.com/confiance888/BlogMagment/internal/middleware"
	"github.com/confiance888/BlogMagment/internal/models"
)

// PostService is the interface that wraps methods for post business logic
type PostService interface {
	// Method Create persists a new post after verifying the author exists,
	// failing with a not-found error for an unknown author.
	Create(ctx context.Context, req *models.PostRequest) (*models.PostResponse, error)
	// Method Get returns a post by id, failing with a not-found error when absent.
	Get(ctx context.Context, postID string) (*models.PostResponse, error)
	// Method Update mutates a post's title and content. The principal must be
	// the post's author or an admin; changing the author fails with a
	// bad-request error.
	Update(ctx context.Context, principal *models.Principal, postID string, req *models.PostRequest) (*models.PostResponse, error)
	// Method Delete removes a post and cascades to its comments. The
	// principal must be the post's author or an admin.
	Delete(ctx context.Context, principal *models.Principal, postID string) error
	// Method List returns one page of posts, newest first, optionally
	// filtered by a case-insensitive search over title and content.
	List(ctx context.Context, page, size int, search string) (*models.PagedResponse[*models.PostResponse], error)
}

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	BaseHandler
	postService PostService
}

// NewPostHandler creates a new post handler
func NewPostHandler(postService PostService, logger *zap.Logger) *PostHandler {
	return &PostHandler{
		BaseHandler: BaseHandler{Logger: logger},
		postService: postService,
	}
}

// RegisterRoutes registers all post handler routes. Reads are public, writes
// require authentication.
func (h *PostHandler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Route("/posts", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.With(requireAuth).Post("/", h.Create)
		r.With(requireAuth).Put("/{id}", h.Update)
		r.With(requireAuth).Delete("/{id}", h.Delete)
	})
}

// Create handles POST /posts
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.PostRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, r, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		h.RespondError(w, r, err)
		return
	}

	resp, err := h.postService.Create(r.Context(), &req)
	if err != nil {
		h.RespondError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, resp)
}

// Get handles GET /posts/{id}
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.postService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Update handles PUT /posts/{id}
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.RespondError(w, r, apperrors.Unauthenticated("authentication required"))
		return
	}

	var req models.PostRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, r, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		h.RespondError(w, r, err)
		return
	}

	resp, err := h.postService.Update(r.Context(), principal, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.RespondError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /posts/{id}
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.RespondError(w, r, apperrors.Unauthenticated("authentication required"))
		return
	}

	if err := h.postService.Delete(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		h.RespondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /posts?page&size&search
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size, err := h.PageParams(r)
	if err != nil {
		h.RespondError(w, r, err)
		return
	}

	resp, err := h.postService.List(r.Context(), page, size, r.URL.Query().Get("search"))
	if err != nil {
		h.RespondError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}
