package handler

import (
	catalogapp "github.com/celly/backoffice/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// CollectionHandler handles collection API endpoints
type CollectionHandler struct {
	BaseHandler
	collectionService *catalogapp.CollectionService
}

// NewCollectionHandler creates a new CollectionHandler
func NewCollectionHandler(base BaseHandler, collectionService *catalogapp.CollectionService) *CollectionHandler {
	return &CollectionHandler{
		BaseHandler:       base,
		collectionService: collectionService,
	}
}

// Create godoc
// @Summary      Create a collection
// @Tags         collections
// @Success      201 {object} dto.Response{data=catalog.CollectionResponse}
// @Router       /collections [post]
func (h *CollectionHandler) Create(c *gin.Context) {
	var req catalogapp.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	collection, err := h.collectionService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, collection)
}

// GetByID godoc
// @Summary      Get a collection by ID
// @Tags         collections
// @Success      200 {object} dto.Response{data=catalog.CollectionResponse}
// @Router       /collections/{id} [get]
func (h *CollectionHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid collection ID format")
		return
	}

	collection, err := h.collectionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, collection)
}

// List godoc
// @Summary      List collections with product counts
// @Tags         collections
// @Success      200 {object} dto.Response{data=[]catalog.CollectionListResponse}
// @Router       /collections [get]
func (h *CollectionHandler) List(c *gin.Context) {
	collections, err := h.collectionService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, collections)
}

// ListPublic godoc
// @Summary      List publicly visible collections
// @Tags         collections
// @Success      200 {object} dto.Response{data=[]catalog.CollectionResponse}
// @Router       /storefront/collections [get]
func (h *CollectionHandler) ListPublic(c *gin.Context) {
	collections, err := h.collectionService.ListPublic(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, collections)
}

// Update godoc
// @Summary      Update a collection
// @Tags         collections
// @Success      200 {object} dto.Response{data=catalog.CollectionResponse}
// @Router       /collections/{id} [put]
func (h *CollectionHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid collection ID format")
		return
	}

	var req catalogapp.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	collection, err := h.collectionService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, collection)
}

// Delete godoc
// @Summary      Delete a collection
// @Tags         collections
// @Success      204
// @Router       /collections/{id} [delete]
func (h *CollectionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid collection ID format")
		return
	}

	if err := h.collectionService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
