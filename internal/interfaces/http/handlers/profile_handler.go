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

// ProfileHandler handles profile directory endpoints
type ProfileHandler struct {
	searchUsecase     *usecases.SearchUsecase
	disclosureUsecase *usecases.DisclosureUsecase
	authUsecase       *usecases.AuthUsecase
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(searchUsecase *usecases.SearchUsecase, disclosureUsecase *usecases.DisclosureUsecase, authUsecase *usecases.AuthUsecase) *ProfileHandler {
	return &ProfileHandler{
		searchUsecase:     searchUsecase,
		disclosureUsecase: disclosureUsecase,
		authUsecase:       authUsecase,
	}
}

// Search filters the profile directory
// POST /api/v1/profiles/search
func (h *ProfileHandler) Search(c *gin.Context) {
	var filters entities.SearchFilters

	if err := c.ShouldBindJSON(&filters); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profiles, err := h.searchUsecase.Search(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"profiles": profiles,
		"total":    len(profiles),
	})
}

// Reveal releases a profile's sensitive subset to an eligible caller.
// Recording the access in the history log is a separate request the client
// makes; a crash between the two loses the log entry, not the data.
// POST /api/v1/profiles/:id/reveal
func (h *ProfileHandler) Reveal(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	user, err := h.authUsecase.Me(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	sensitive, err := h.disclosureUsecase.Reveal(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		if err == domainerrors.ErrNotEligible {
			response.Error(c, domainerrors.NotEligible("Complete the risk survey to unlock sensitive fields"))
			return
		}
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Profile not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, sensitive)
}
