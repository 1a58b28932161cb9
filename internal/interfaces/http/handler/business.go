package handler

import (
	businessapp "github.com/celly/backoffice/internal/application/business"
	"github.com/gin-gonic/gin"
)

// BusinessHandler handles business profile API endpoints
type BusinessHandler struct {
	BaseHandler
	profileService *businessapp.ProfileService
}

// NewBusinessHandler creates a new BusinessHandler
func NewBusinessHandler(base BaseHandler, profileService *businessapp.ProfileService) *BusinessHandler {
	return &BusinessHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// Get godoc
// @Summary      Get the business profile
// @Tags         business
// @Success      200 {object} dto.Response{data=business.ProfileResponse}
// @Router       /business [get]
func (h *BusinessHandler) Get(c *gin.Context) {
	profile, err := h.profileService.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profile)
}

// Update godoc
// @Summary      Update the business profile
// @Tags         business
// @Success      200 {object} dto.Response{data=business.ProfileResponse}
// @Router       /business [put]
func (h *BusinessHandler) Update(c *gin.Context) {
	var req businessapp.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profile)
}
