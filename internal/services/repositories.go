package services

import (
	"context"

	"github.com/confiance888/BlogMagment/internal/models"
)

// UserRepository is the interface that wraps methods for users table data access
type UserRepository interface {
	// Method Create inserts a new user and assigns its id and timestamps.
	Create(ctx context.Context, user *models.User) error
	// Method GetByID retrieves a user by ID.
	//
	// If no user with such ID exists, repositories.ErrNotFound is returned
	// together with a "nil" value.
	GetByID(ctx context.Context, userID int) (*models.User, error)
	// Method GetByUsername retrieves a user by username.
	//
	// If no user with such username exists, repositories.ErrNotFound is
	// returned together with a "nil" value.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// Method ExistsByEmail checks if a user with such email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Method ExistsByUsername checks if a user with such username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// Method Delete hard-deletes a user by ID without cascading to authored
	// content. Returns repositories.ErrNotFound when no row was removed.
	Delete(ctx context.Context, userID int) error
}

// PostRepository is the interface that wraps methods for the post document collection
type PostRepository interface {
	// Method Create persists a new post, assigning its id and timestamps.
	Create(ctx context.Context, post *models.Post) error
	// Method GetByID retrieves a post by ID, returning repositories.ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.Post, error)
	// Method Update overwrites an existing post, returning repositories.ErrNotFound when absent.
	Update(ctx context.Context, post *models.Post) error
	// Method Delete removes a post by ID, returning repositories.ErrNotFound when absent.
	Delete(ctx context.Context, id string) error
	// Method List returns one page of posts ordered by creation time
	// descending plus the total matching count. A non-blank search restricts
	// results to case-insensitive substring matches in title or content.
	List(ctx context.Context, search string, offset, limit int) ([]*models.Post, int64, error)
}

// CommentRepository is the interface that wraps methods for the comment document collection
type CommentRepository interface {
	// Method Create persists a new comment, assigning its id and timestamps.
	Create(ctx context.Context, comment *models.Comment) error
	// Method GetByID retrieves a comment by ID, returning repositories.ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	// Method Update overwrites an existing comment, returning repositories.ErrNotFound when absent.
	Update(ctx context.Context, comment *models.Comment) error
	// Method Delete removes a comment by ID, returning repositories.ErrNotFound when absent.
	Delete(ctx context.Context, id string) error
	// Method ListByPost returns one page of a post's comments ordered by
	// creation time ascending plus the total count for that post.
	ListByPost(ctx context.Context, postID string, offset, limit int) ([]*models.Comment, int64, error)
	// Method DeleteByPost removes every comment referencing the given post
	// and returns how many were removed.
	DeleteByPost(ctx context.Context, postID string) (int, error)
}
