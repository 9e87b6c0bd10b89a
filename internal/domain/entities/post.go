package entities

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus represents forum post moderation state
type PostStatus string

const (
	PostStatusPending  PostStatus = "PENDING"
	PostStatusApproved PostStatus = "APPROVED"
)

// Post represents a forum post
type Post struct {
	ID        uuid.UUID  `json:"id"`
	Author    string     `json:"author"` // author's phone number
	Title     string     `json:"title"`
	Category  string     `json:"category"`
	Content   string     `json:"content"`
	Views     int        `json:"views"`
	Status    PostStatus `json:"status"`
	Replies   []Reply    `json:"replies"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Reply represents a reply to a forum post
type Reply struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"postId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreatePostInput represents input for creating a post
type CreatePostInput struct {
	Title    string `json:"title" binding:"required,min=2,max=200"`
	Category string `json:"category" binding:"required,max=50"`
	Content  string `json:"content" binding:"required"`
}

// CreateReplyInput represents input for replying to a post
type CreateReplyInput struct {
	Content string `json:"content" binding:"required"`
}
