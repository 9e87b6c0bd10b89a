package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"fin-circle.backend/internal/domain/entities"
	domainerrors "fin-circle.backend/internal/domain/errors"
	"fin-circle.backend/internal/interfaces/http/middleware"
	"fin-circle.backend/internal/interfaces/http/response"
	"fin-circle.backend/internal/usecases"
)

// ForumHandler handles forum endpoints
type ForumHandler struct {
	forumUsecase *usecases.ForumUsecase
}

// NewForumHandler creates a new forum handler
func NewForumHandler(forumUsecase *usecases.ForumUsecase) *ForumHandler {
	return &ForumHandler{
		forumUsecase: forumUsecase,
	}
}

// List returns approved posts, newest first
// GET /api/v1/posts
func (h *ForumHandler) List(c *gin.Context) {
	posts, err := h.forumUsecase.ListPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"posts": posts,
		"total": len(posts),
	})
}

// Get returns one approved post and bumps its view counter
// GET /api/v1/posts/:id
func (h *ForumHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid post id"))
		return
	}

	post, err := h.forumUsecase.GetPost(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Post not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// Create creates a post; regular users' posts await moderation
// POST /api/v1/posts
func (h *ForumHandler) Create(c *gin.Context) {
	phone, ok := middleware.GetUserPhone(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}
	role, _ := middleware.GetUserRole(c)

	var input entities.CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	post, err := h.forumUsecase.CreatePost(c.Request.Context(), phone, entities.UserRole(role), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, post)
}

// Reply appends a reply to an approved post
// POST /api/v1/posts/:id/replies
func (h *ForumHandler) Reply(c *gin.Context) {
	phone, ok := middleware.GetUserPhone(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid post id"))
		return
	}

	var input entities.CreateReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	reply, err := h.forumUsecase.AddReply(c.Request.Context(), id, phone, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Post not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, reply)
}
