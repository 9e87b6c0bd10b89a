package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"fin-circle.backend/internal/domain/entities"
	domainerrors "fin-circle.backend/internal/domain/errors"
	"fin-circle.backend/internal/infrastructure/models"
)

// PostRepository implements forum post and reply operations
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create creates a new post
func (r *PostRepository) Create(ctx context.Context, post *entities.Post) error {
	m := &models.Post{
		ID:        post.ID,
		Author:    post.Author,
		Title:     post.Title,
		Category:  post.Category,
		Content:   post.Content,
		Views:     post.Views,
		Status:    string(post.Status),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a post with its replies
func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	var m models.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	var replyRows []models.Reply
	err := r.db.WithContext(ctx).
		Where("post_id = ?", id).
		Order("created_at ASC").
		Find(&replyRows).Error
	if err != nil {
		return nil, err
	}

	post := toPostEntity(&m)
	for _, rm := range replyRows {
		post.Replies = append(post.Replies, entities.Reply{
			ID:        rm.ID,
			PostID:    rm.PostID,
			Author:    rm.Author,
			Content:   rm.Content,
			CreatedAt: rm.CreatedAt,
		})
	}
	return post, nil
}

// List lists posts with the given status, newest first
func (r *PostRepository) List(ctx context.Context, status entities.PostStatus) ([]*entities.Post, error) {
	var rows []models.Post
	err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toPostEntities(rows), nil
}

// ListAll lists every post regardless of status, newest first
func (r *PostRepository) ListAll(ctx context.Context) ([]*entities.Post, error) {
	var rows []models.Post
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toPostEntities(rows), nil
}

// UpdateStatus moves a post through moderation
func (r *PostRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.PostStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// IncrementViews bumps the view counter
func (r *PostRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).
		Update("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// AddReply appends a reply to a post
func (r *PostRepository) AddReply(ctx context.Context, reply *entities.Reply) error {
	m := &models.Reply{
		ID:        reply.ID,
		PostID:    reply.PostID,
		Author:    reply.Author,
		Content:   reply.Content,
		CreatedAt: reply.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func toPostEntity(m *models.Post) *entities.Post {
	return &entities.Post{
		ID:        m.ID,
		Author:    m.Author,
		Title:     m.Title,
		Category:  m.Category,
		Content:   m.Content,
		Views:     m.Views,
		Status:    entities.PostStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toPostEntities(rows []models.Post) []*entities.Post {
	posts := make([]*entities.Post, 0, len(rows))
	for _, m := range rows {
		model := m
		posts = append(posts, toPostEntity(&model))
	}
	return posts
}
