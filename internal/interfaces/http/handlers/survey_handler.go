package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "fin-circle.backend/internal/domain/errors"
	"fin-circle.backend/internal/interfaces/http/middleware"
	"fin-circle.backend/internal/interfaces/http/response"
	"fin-circle.backend/internal/usecases"
)

// SurveyHandler handles risk survey endpoints
type SurveyHandler struct {
	surveyUsecase *usecases.SurveyUsecase
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveyUsecase *usecases.SurveyUsecase) *SurveyHandler {
	return &SurveyHandler{
		surveyUsecase: surveyUsecase,
	}
}

// Eligibility reports whether the caller may take the survey now
// GET /api/v1/survey/eligibility
func (h *SurveyHandler) Eligibility(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	gate, err := h.surveyUsecase.Eligibility(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gate)
}

// Submit scores and records a survey submission
// POST /api/v1/survey
func (h *SurveyHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input struct {
		Answers map[string]any `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.surveyUsecase.Submit(c.Request.Context(), userID, input.Answers)
	if err != nil {
		if err == domainerrors.ErrNotEligible {
			response.Error(c, domainerrors.NotEligible("Survey already completed within the waiting period"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Submissions lists the caller's past submissions, newest first
// GET /api/v1/survey/submissions
func (h *SurveyHandler) Submissions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	submissions, err := h.surveyUsecase.Submissions(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"submissions": submissions,
		"total":       len(submissions),
	})
}
