package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/confiance888/BlogMagment/internal/apperrors"
	"github.com/confiance888/BlogMagment/internal/models"
	"github.com/confiance888/BlogMagment/internal/repositories"
)

// postService orchestrates post CRUD across the document store and the user store
type postService struct {
	postRepo    PostRepository
	commentRepo CommentRepository
	userRepo    UserRepository
	logger      *zap.Logger
}

// NewPostService creates a new post service
func NewPostService(postRepo PostRepository, commentRepo CommentRepository, userRepo UserRepository, logger *zap.Logger) *postService {
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Create persists a new post after verifying the author exists in the user store
func (s *postService) Create(ctx context.Context, req *models.PostRequest) (*models.PostResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, req.AuthorID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("author not found")
		}
		return nil, err
	}

	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.AuthorID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("post created", zap.String("post_id", post.ID), zap.Int("author_id", post.AuthorID))

	return s.mapToResponse(ctx, post), nil
}

// Get returns a post by id
func (s *postService) Get(ctx context.Context, postID string) (*models.PostResponse, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.mapToResponse(ctx, post), nil
}

// Update mutates a post's title and content. The caller must be the post's
// author or an admin, and the author reference cannot be reassigned.
func (s *postService) Update(ctx context.Context, principal *models.Principal, postID string, req *models.PostRequest) (*models.PostResponse, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !principal.CanModify(post.AuthorID) {
		return nil, apperrors.Forbidden("you are not authorized to update this post")
	}

	if req.AuthorID != post.AuthorID {
		return nil, apperrors.BadRequest("author of a post cannot be changed")
	}

	post.Title = req.Title
	post.Content = req.Content

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.mapToResponse(ctx, post), nil
}

// Delete removes a post and all comments referencing it. The comment cascade
// runs first and is not transactional with the post deletion; a crash in
// between leaves the post in place with some comments already gone.
func (s *postService) Delete(ctx context.Context, principal *models.Principal, postID string) error {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return err
	}

	if !principal.CanModify(post.AuthorID) {
		return apperrors.Forbidden("you are not authorized to delete this post")
	}

	deleted, err := s.commentRepo.DeleteByPost(ctx, postID)
	if err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	s.logger.Info("post deleted",
		zap.String("post_id", postID),
		zap.Int("comments_deleted", deleted),
	)
	return nil
}

// List returns one page of posts, newest first, optionally filtered by a
// case-insensitive search over title and content
func (s *postService) List(ctx context.Context, page, size int, search string) (*models.PagedResponse[*models.PostResponse], error) {
	offset, err := pageOffset(page, size)
	if err != nil {
		return nil, err
	}

	posts, total, err := s.postRepo.List(ctx, search, offset, size)
	if err != nil {
		return nil, err
	}

	content := make([]*models.PostResponse, 0, len(posts))
	for _, post := range posts {
		content = append(content, s.mapToResponse(ctx, post))
	}

	return models.NewPagedResponse(content, page, size, total), nil
}

// getPost loads a post, translating a missing document into NotFound
func (s *postService) getPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("post not found")
		}
		return nil, err
	}
	return post, nil
}

// mapToResponse builds the external representation of a post. The author was
// validated at write time; if the user has since been deleted the username
// falls back to empty rather than failing the mapping.
func (s *postService) mapToResponse(ctx context.Context, post *models.Post) *models.PostResponse {
	var authorUsername string
	if author, err := s.userRepo.GetByID(ctx, post.AuthorID); err == nil {
		authorUsername = author.Username
	}

	return &models.PostResponse{
		ID:             post.ID,
		Title:          post.Title,
		Content:        post.Content,
		AuthorUsername: authorUsername,
		CreatedAt:      post.CreatedAt,
		UpdatedAt:      post.UpdatedAt,
	}
}
