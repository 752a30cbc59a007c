package repositories

import (
	"context"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/confiance888/BlogMagment/internal/models"
)

// commentRepository persists comments as documents in the Badger store
type commentRepository struct {
	db *badger.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *badger.DB) *commentRepository {
	return &commentRepository{db: db}
}

// Create persists a new comment, assigning its id and timestamps
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	comment.ID = uuid.NewString()
	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	return r.db.Update(func(txn *badger.Txn) error {
		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}
		return txn.Set(commentKey(comment.ID), data)
	})
}

// GetByID retrieves a comment by ID
func (r *commentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(commentKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &comment)
		})
	})

	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Update overwrites an existing comment and bumps its updated timestamp
func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	comment.UpdatedAt = time.Now().UTC()

	return r.db.Update(func(txn *badger.Txn) error {
		key := commentKey(comment.ID)

		// Verify comment exists
		if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes a comment by ID
func (r *commentRepository) Delete(ctx context.Context, id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := commentKey(id)

		// Verify comment exists
		if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}

// ListByPost returns one page of comments for a post ordered by creation time
// ascending, together with the total count of the post's comments
func (r *commentRepository) ListByPost(ctx context.Context, postID string, offset, limit int) ([]*models.Comment, int64, error) {
	comments, err := r.collectByPost(postID)
	if err != nil {
		return nil, 0, err
	}

	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})

	total := int64(len(comments))
	return pageSlice(comments, offset, limit), total, nil
}

// DeleteByPost deletes all comments referencing the given post and returns
// how many were removed
func (r *commentRepository) DeleteByPost(ctx context.Context, postID string) (int, error) {
	comments, err := r.collectByPost(postID)
	if err != nil {
		return 0, err
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		for _, comment := range comments {
			if err := txn.Delete(commentKey(comment.ID)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(comments), nil
}

// collectByPost scans the comment collection for documents referencing postID
func (r *commentRepository) collectByPost(postID string) ([]*models.Comment, error) {
	var comments []*models.Comment

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(commentKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var comment models.Comment
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return err
			}
			if comment.PostID == postID {
				comments = append(comments, &comment)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return comments, nil
}

func commentKey(id string) []byte {
	return []byte(commentKeyPrefix + id)
}
