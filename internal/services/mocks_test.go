package services

import (
	"context"
	"fmt"
	"time"

	"github.com/confiance888/BlogMagment/internal/models"
	"github.com/confiance888/BlogMagment/internal/repositories"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	users                  map[int]*models.User
	created                *models.User
	createErr              error
	existsByEmailResult    bool
	existsByEmailErr       error
	existsByUsernameResult bool
	existsByUsernameErr    error
	deleteErr              error
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = 1
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	m.created = user
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	user, ok := m.users[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.existsByEmailResult, m.existsByEmailErr
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return m.existsByUsernameResult, m.existsByUsernameErr
}

func (m *mockUserRepository) Delete(ctx context.Context, userID int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.users[userID]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.users, userID)
	return nil
}

// mockPostRepository is a mock implementation of PostRepository.
// The calls slice, when shared with a mockCommentRepository, records the
// order of cross-store operations.
type mockPostRepository struct {
	posts      map[string]*models.Post
	nextID     int
	listResult []*models.Post
	listTotal  int64
	listErr    error
	lastOffset int
	lastLimit  int
	lastSearch string
	calls      *[]string
}

func (m *mockPostRepository) record(call string) {
	if m.calls != nil {
		*m.calls = append(*m.calls, call)
	}
}

func (m *mockPostRepository) Create(ctx context.Context, post *models.Post) error {
	m.nextID++
	post.ID = fmt.Sprintf("post-%d", m.nextID)
	post.CreatedAt = time.Now().UTC()
	post.UpdatedAt = post.CreatedAt
	if m.posts == nil {
		m.posts = make(map[string]*models.Post)
	}
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	post, ok := m.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *mockPostRepository) Update(ctx context.Context, post *models.Post) error {
	if _, ok := m.posts[post.ID]; !ok {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepository) Delete(ctx context.Context, id string) error {
	m.record("post.Delete")
	if _, ok := m.posts[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *mockPostRepository) List(ctx context.Context, search string, offset, limit int) ([]*models.Post, int64, error) {
	m.lastSearch = search
	m.lastOffset = offset
	m.lastLimit = limit
	return m.listResult, m.listTotal, m.listErr
}

// mockCommentRepository is a mock implementation of CommentRepository
type mockCommentRepository struct {
	comments   map[string]*models.Comment
	nextID     int
	listResult []*models.Comment
	listTotal  int64
	listErr    error
	calls      *[]string
}

func (m *mockCommentRepository) record(call string) {
	if m.calls != nil {
		*m.calls = append(*m.calls, call)
	}
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	m.nextID++
	comment.ID = fmt.Sprintf("comment-%d", m.nextID)
	comment.CreatedAt = time.Now().UTC()
	comment.UpdatedAt = comment.CreatedAt
	if m.comments == nil {
		m.comments = make(map[string]*models.Comment)
	}
	m.comments[comment.ID] = comment
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	comment, ok := m.comments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return comment, nil
}

func (m *mockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	if _, ok := m.comments[comment.ID]; !ok {
		return repositories.ErrNotFound
	}
	m.comments[comment.ID] = comment
	return nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.comments[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.comments, id)
	return nil
}

func (m *mockCommentRepository) ListByPost(ctx context.Context, postID string, offset, limit int) ([]*models.Comment, int64, error) {
	return m.listResult, m.listTotal, m.listErr
}

func (m *mockCommentRepository) DeleteByPost(ctx context.Context, postID string) (int, error) {
	m.record("comment.DeleteByPost")
	deleted := 0
	for id, comment := range m.comments {
		if comment.PostID == postID {
			delete(m.comments, id)
			deleted++
		}
	}
	return deleted, nil
}
