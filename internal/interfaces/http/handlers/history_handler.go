package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"fin-circle.backend/internal/domain/entities"
	domainerrors "fin-circle.backend/internal/domain/errors"
	"fin-circle.backend/internal/interfaces/http/middleware"
	"fin-circle.backend/internal/interfaces/http/response"
	"fin-circle.backend/internal/usecases"
)

// HistoryHandler handles the per-user profile action log
type HistoryHandler struct {
	historyUsecase *usecases.HistoryUsecase
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(historyUsecase *usecases.HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{
		historyUsecase: historyUsecase,
	}
}

// Record appends one profile action to the caller's log
// POST /api/v1/history
func (h *HistoryHandler) Record(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.RecordActionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	entry, err := h.historyUsecase.Record(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, entry)
}

// List returns the caller's entries, newest first
// GET /api/v1/history
func (h *HistoryHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	entries, err := h.historyUsecase.History(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"history": entries,
		"total":   len(entries),
	})
}
