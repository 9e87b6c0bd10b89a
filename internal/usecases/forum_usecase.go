package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"fin-circle.backend/internal/domain/entities"
	domainerrors "fin-circle.backend/internal/domain/errors"
	"fin-circle.backend/internal/domain/repositories"
	"fin-circle.backend/pkg/logger"
)

// ForumUsecase handles forum posts, replies and moderation
type ForumUsecase struct {
	postRepo  repositories.PostRepository
	sanitizer *bluemonday.Policy

	now func() time.Time
}

// NewForumUsecase creates a new forum usecase
func NewForumUsecase(postRepo repositories.PostRepository) *ForumUsecase {
	return &ForumUsecase{
		postRepo:  postRepo,
		sanitizer: bluemonday.UGCPolicy(),
		now:       time.Now,
	}
}

// CreatePost creates a post. Content is sanitized before storage. Posts by
// regular users start PENDING; admin posts go live immediately.
func (u *ForumUsecase) CreatePost(ctx context.Context, author string, role entities.UserRole, input *entities.CreatePostInput) (*entities.Post, error) {
	content := strings.TrimSpace(u.sanitizer.Sanitize(input.Content))
	if content == "" {
		return nil, domainerrors.BadRequest("post content is empty after sanitization")
	}

	status := entities.PostStatusPending
	if role == entities.UserRoleAdmin {
		status = entities.PostStatusApproved
	}

	nowAt := u.now()
	post := &entities.Post{
		ID:        uuid.New(),
		Author:    author,
		Title:     u.sanitizer.Sanitize(input.Title),
		Category:  input.Category,
		Content:   content,
		Status:    status,
		CreatedAt: nowAt,
		UpdatedAt: nowAt,
	}

	if err := u.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	logger.Info(ctx, "post created",
		zap.String("postId", post.ID.String()),
		zap.String("status", string(post.Status)))
	return post, nil
}

// ListPosts returns approved posts, newest first
func (u *ForumUsecase) ListPosts(ctx context.Context) ([]*entities.Post, error) {
	return u.postRepo.List(ctx, entities.PostStatusApproved)
}

// ListPendingPosts returns posts awaiting moderation
func (u *ForumUsecase) ListPendingPosts(ctx context.Context) ([]*entities.Post, error) {
	return u.postRepo.List(ctx, entities.PostStatusPending)
}

// GetPost returns one approved post and bumps its view counter. Pending
// posts are invisible outside moderation.
func (u *ForumUsecase) GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	post, err := u.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.Status != entities.PostStatusApproved {
		return nil, domainerrors.ErrNotFound
	}

	if err := u.postRepo.IncrementViews(ctx, id); err != nil {
		logger.Warn(ctx, "failed to increment post views",
			zap.String("postId", id.String()), zap.Error(err))
	} else {
		post.Views++
	}
	return post, nil
}

// ApprovePost flips a pending post to APPROVED
func (u *ForumUsecase) ApprovePost(ctx context.Context, id uuid.UUID) error {
	post, err := u.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.Status == entities.PostStatusApproved {
		return nil
	}
	return u.postRepo.UpdateStatus(ctx, id, entities.PostStatusApproved)
}

// AddReply appends a sanitized reply to an approved post
func (u *ForumUsecase) AddReply(ctx context.Context, postID uuid.UUID, author string, input *entities.CreateReplyInput) (*entities.Reply, error) {
	post, err := u.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Status != entities.PostStatusApproved {
		return nil, domainerrors.ErrNotFound
	}

	content := strings.TrimSpace(u.sanitizer.Sanitize(input.Content))
	if content == "" {
		return nil, domainerrors.BadRequest("reply content is empty after sanitization")
	}

	reply := &entities.Reply{
		ID:        uuid.New(),
		PostID:    postID,
		Author:    author,
		Content:   content,
		CreatedAt: u.now(),
	}
	if err := u.postRepo.AddReply(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}
