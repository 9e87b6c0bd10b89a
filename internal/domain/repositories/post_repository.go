package repositories

import (
	"context"

	"github.com/google/uuid"
	"fin-circle.backend/internal/domain/entities"
)

// PostRepository defines forum post and reply operations
type PostRepository interface {
	Create(ctx context.Context, post *entities.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Post, error)
	List(ctx context.Context, status entities.PostStatus) ([]*entities.Post, error)
	ListAll(ctx context.Context) ([]*entities.Post, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.PostStatus) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
	AddReply(ctx context.Context, reply *entities.Reply) error
}
