package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "fin-circle.backend/internal/domain/errors"
	"fin-circle.backend/internal/interfaces/http/response"
	"fin-circle.backend/internal/usecases"
)

// AdminHandler handles moderation endpoints
type AdminHandler struct {
	forumUsecase *usecases.ForumUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(forumUsecase *usecases.ForumUsecase) *AdminHandler {
	return &AdminHandler{
		forumUsecase: forumUsecase,
	}
}

// PendingPosts lists posts awaiting moderation
// GET /api/v1/admin/posts/pending
func (h *AdminHandler) PendingPosts(c *gin.Context) {
	posts, err := h.forumUsecase.ListPendingPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"posts": posts,
		"total": len(posts),
	})
}

// ApprovePost flips a pending post to APPROVED
// POST /api/v1/admin/posts/:id/approve
func (h *AdminHandler) ApprovePost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid post id"))
		return
	}

	if err := h.forumUsecase.ApprovePost(c.Request.Context(), id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Post not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Post approved"})
}
