package models

import "time"

// Post represents a blog post document. AuthorID is a weak reference to a
// User; it is validated by the service at write time, never by the store.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int       `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
