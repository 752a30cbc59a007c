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

// CommentService is the interface that wraps methods for comment business logic
type CommentService interface {
	// Method Create persists a new comment after verifying the referenced
	// post and author exist, failing with a not-found error otherwise.
	Create(ctx context.Context, req *models.CommentRequest) (*models.CommentResponse, error)
	// Method Get returns a comment by id, failing with a not-found error when absent.
	Get(ctx context.Context, commentID string) (*models.CommentResponse, error)
	// Method Update mutates a comment's content. The principal must be the
	// comment's author or an admin; changing the post or author reference
	// fails with a bad-request error.
	Update(ctx context.Context, principal *models.Principal, commentID string, req *models.CommentRequest) (*models.CommentResponse, error)
	// Method Delete removes a comment. The principal must be the comment's
	// author or an admin.
	Delete(ctx context.Context, principal *models.Principal, commentID string) error
	// Method ListByPost returns one page of a post's comments, oldest first,
	// failing with a not-found error when the post does not exist.
	ListByPost(ctx context.Context, postID string, page, size int) (*models.PagedResponse[*models.CommentResponse], error)
}

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	BaseHandler
	commentService CommentService
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService CommentService, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{
		BaseHandler: BaseHandler{Logger: logger},
		commentService: commentService,
	}
}

// RegisterRoutes registers all comment handler routes, including the
// per-post listing nested under /posts. Reads are public, writes require
// authentication.
func (h *CommentHandler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Route("/comments", func(r chi.Router) {
		r.Get("/{id}", h.Get)
		r.With(requireAuth).Post("/", h.Create)
		r.With(requireAuth).Put("/{id}", h.Update)
		r.With(requireAuth).Delete("/{id}", h.Delete)
	})
	r.Get("/posts/{id}/comments", h.ListByPost)
}

// Create handles POST /comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CommentRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, r, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		h.RespondError(w, r, err)
		return
	}

	resp, err := h.commentService.Create(r.Context(), &req)
	if err != nil {
		h.RespondError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, resp)
}

// Get handles GET /comments/{id}
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.commentService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Update handles PUT /comments/{id}
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.RespondError(w, r, apperrors.Unauthenticated("authentication required"))
		return
	}

	var req models.CommentRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, r, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		h.RespondError(w, r, err)
		return
	}

	resp, err := h.commentService.Update(r.Context(), principal, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.RespondError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /comments/{id}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.RespondError(w, r, apperrors.Unauthenticated("authentication required"))
		return
	}

	if err := h.commentService.Delete(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		h.RespondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListByPost handles GET /posts/{id}/comments?page&size
func (h *CommentHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	page, size, err := h.PageParams(r)
	if err != nil {
		h.RespondError(w, r, err)
		return
	}

	resp, err := h.commentService.ListByPost(r.Context(), chi.URLParam(r, "id"), page, size)
	if err != nil {
		h.RespondError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}
