package handler

import (
	catalogapp "github.com/celly/backoffice/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles product API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(base BaseHandler, productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{
		BaseHandler:    base,
		productService: productService,
	}
}

// Create godoc
// @Summary      Create a product
// @Tags         products
// @Success      201 {object} dto.Response{data=catalog.ProductResponse}
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// GetByID godoc
// @Summary      Get a product by ID
// @Tags         products
// @Success      200 {object} dto.Response{data=catalog.ProductResponse}
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// List godoc
// @Summary      List products
// @Tags         products
// @Param        search query string false "Search by name or code"
// @Param        available query bool false "Filter by availability"
// @Param        category_id query string false "Filter by category" format(uuid)
// @Param        collection_id query string false "Filter by collection" format(uuid)
// @Param        page query int false "Page number"
// @Param        page_size query int false "Items per page"
// @Success      200 {object} dto.Response{data=[]catalog.ProductResponse}
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var filter catalogapp.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	products, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// ListAvailable godoc
// @Summary      List available products
// @Tags         products
// @Success      200 {object} dto.Response{data=[]catalog.ProductResponse}
// @Router       /storefront/products [get]
func (h *ProductHandler) ListAvailable(c *gin.Context) {
	products, err := h.productService.ListAvailable(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// ListByCategory godoc
// @Summary      List products in a category
// @Tags         products
// @Success      200 {object} dto.Response{data=[]catalog.ProductResponse}
// @Router       /categories/{id}/products [get]
func (h *ProductHandler) ListByCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	products, err := h.productService.ListByCategory(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// ListByCollection godoc
// @Summary      List products in a collection
// @Tags         products
// @Success      200 {object} dto.Response{data=[]catalog.ProductResponse}
// @Router       /collections/{id}/products [get]
func (h *ProductHandler) ListByCollection(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid collection ID format")
		return
	}

	products, err := h.productService.ListByCollection(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// Update godoc
// @Summary      Update a product
// @Tags         products
// @Success      200 {object} dto.Response{data=catalog.ProductResponse}
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete godoc
// @Summary      Delete a product
// @Tags         products
// @Success      204
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
