package handler

import (
	partnerapp "github.com/celly/backoffice/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// GroupHandler handles customer group API endpoints
type GroupHandler struct {
	BaseHandler
	groupService *partnerapp.GroupService
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(base BaseHandler, groupService *partnerapp.GroupService) *GroupHandler {
	return &GroupHandler{
		BaseHandler:  base,
		groupService: groupService,
	}
}

// Create godoc
// @Summary      Create a customer group
// @Tags         groups
// @Success      201 {object} dto.Response{data=partner.GroupResponse}
// @Router       /groups [post]
func (h *GroupHandler) Create(c *gin.Context) {
	var req partnerapp.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	group, err := h.groupService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, group)
}

// GetByID godoc
// @Summary      Get a customer group with its order count
// @Tags         groups
// @Success      200 {object} dto.Response{data=partner.GroupDetailResponse}
// @Router       /groups/{id} [get]
func (h *GroupHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid group ID format")
		return
	}

	group, err := h.groupService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, group)
}

// List godoc
// @Summary      List customer groups
// @Tags         groups
// @Param        search query string false "Filter by name"
// @Success      200 {object} dto.Response{data=[]partner.GroupResponse}
// @Router       /groups [get]
func (h *GroupHandler) List(c *gin.Context) {
	query := c.Query("search")

	var (
		groups []partnerapp.GroupResponse
		err    error
	)
	if query != "" {
		groups, err = h.groupService.Search(c.Request.Context(), query)
	} else {
		groups, err = h.groupService.List(c.Request.Context())
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, groups)
}

// Update godoc
// @Summary      Update a customer group
// @Tags         groups
// @Success      200 {object} dto.Response{data=partner.GroupResponse}
// @Router       /groups/{id} [put]
func (h *GroupHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid group ID format")
		return
	}

	var req partnerapp.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	group, err := h.groupService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, group)
}

// Delete godoc
// @Summary      Delete a customer group
// @Tags         groups
// @Success      204
// @Router       /groups/{id} [delete]
func (h *GroupHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid group ID format")
		return
	}

	if err := h.groupService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
