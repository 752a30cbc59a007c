package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/confiance888/BlogMagment/internal/apperrors"
	"github.com/confiance888/BlogMagment/internal/models"
	"github.com/confiance888/BlogMagment/internal/repositories"
)

// commentService orchestrates comment CRUD, validating the referenced post
// and author across both stores
type commentService struct {
	commentRepo CommentRepository
	postRepo    PostRepository
	userRepo    UserRepository
	logger      *zap.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(commentRepo CommentRepository, postRepo PostRepository, userRepo UserRepository, logger *zap.Logger) *commentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Create persists a new comment after verifying both the referenced post and
// the author exist
func (s *commentService) Create(ctx context.Context, req *models.CommentRequest) (*models.CommentResponse, error) {
	if _, err := s.postRepo.GetByID(ctx, req.PostID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("post not found")
		}
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.AuthorID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("author not found")
		}
		return nil, err
	}

	comment := &models.Comment{
		PostID:   req.PostID,
		AuthorID: req.AuthorID,
		Content:  req.Content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment created",
		zap.String("comment_id", comment.ID),
		zap.String("post_id", comment.PostID),
		zap.Int("author_id", comment.AuthorID),
	)

	return s.mapToResponse(ctx, comment), nil
}

// Get returns a comment by id
func (s *commentService) Get(ctx context.Context, commentID string) (*models.CommentResponse, error) {
	comment, err := s.getComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	return s.mapToResponse(ctx, comment), nil
}

// Update mutates a comment's content. The caller must be the comment's author
// or an admin; the post and author references are immutable.
func (s *commentService) Update(ctx context.Context, principal *models.Principal, commentID string, req *models.CommentRequest) (*models.CommentResponse, error) {
	comment, err := s.getComment(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if !principal.CanModify(comment.AuthorID) {
		return nil, apperrors.Forbidden("you are not authorized to update this comment")
	}

	if req.PostID != comment.PostID {
		return nil, apperrors.BadRequest("post of a comment cannot be changed")
	}
	if req.AuthorID != comment.AuthorID {
		return nil, apperrors.BadRequest("author of a comment cannot be changed")
	}

	comment.Content = req.Content

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return s.mapToResponse(ctx, comment), nil
}

// Delete removes a comment. The caller must be the comment's author or an admin.
func (s *commentService) Delete(ctx context.Context, principal *models.Principal, commentID string) error {
	comment, err := s.getComment(ctx, commentID)
	if err != nil {
		return err
	}

	if !principal.CanModify(comment.AuthorID) {
		return apperrors.Forbidden("you are not authorized to delete this comment")
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}

	s.logger.Info("comment deleted", zap.String("comment_id", commentID))
	return nil
}

// ListByPost returns one page of a post's comments, oldest first. The post
// must exist.
func (s *commentService) ListByPost(ctx context.Context, postID string, page, size int) (*models.PagedResponse[*models.CommentResponse], error) {
	offset, err := pageOffset(page, size)
	if err != nil {
		return nil, err
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("post not found")
		}
		return nil, err
	}

	comments, total, err := s.commentRepo.ListByPost(ctx, postID, offset, size)
	if err != nil {
		return nil, err
	}

	content := make([]*models.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		content = append(content, s.mapToResponse(ctx, comment))
	}

	return models.NewPagedResponse(content, page, size, total), nil
}

// getComment loads a comment, translating a missing document into NotFound
func (s *commentService) getComment(ctx context.Context, commentID string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("comment not found")
		}
		return nil, err
	}
	return comment, nil
}

// mapToResponse builds the external representation of a comment, falling back
// to an empty author username when the author no longer resolves
func (s *commentService) mapToResponse(ctx context.Context, comment *models.Comment) *models.CommentResponse {
	var authorUsername string
	if author, err := s.userRepo.GetByID(ctx, comment.AuthorID); err == nil {
		authorUsername = author.Username
	}

	return &models.CommentResponse{
		ID:             comment.ID,
		PostID:         comment.PostID,
		AuthorUsername: authorUsername,
		Content:        comment.Content,
		CreatedAt:      comment.CreatedAt,
	}
}
