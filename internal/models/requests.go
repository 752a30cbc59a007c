package models

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest is the payload for authentication
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PostRequest is the payload for creating or updating a post
type PostRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=200"`
	Content  string `json:"content" validate:"required"`
	AuthorID int    `json:"authorId" validate:"required,gt=0"`
}

// CommentRequest is the payload for creating or updating a comment
type CommentRequest struct {
	PostID   string `json:"postId" validate:"required"`
	AuthorID int    `json:"authorId" validate:"required,gt=0"`
	Content  string `json:"content" validate:"required,max=2000"`
}
