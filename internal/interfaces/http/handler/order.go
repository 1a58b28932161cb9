package handler

import (
	"strconv"

	orderapp "github.com/celly/backoffice/internal/application/order"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles order API endpoints
type OrderHandler struct {
	BaseHandler
	orderService *orderapp.Service
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(base BaseHandler, orderService *orderapp.Service) *OrderHandler {
	return &OrderHandler{
		BaseHandler:  base,
		orderService: orderService,
	}
}

// Create godoc
// @Summary      Create an order with its line items
// @Tags         orders
// @Success      201 {object} dto.Response{data=order.OrderResponse}
// @Router       /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req orderapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	o, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, o)
}

// Edit godoc
// @Summary      Edit an order, reconciling its line items
// @Tags         orders
// @Success      200 {object} dto.Response{data=order.OrderResponse}
// @Router       /orders/{id} [put]
func (h *OrderHandler) Edit(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req orderapp.EditOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	o, err := h.orderService.Edit(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, o)
}

// GetByID godoc
// @Summary      Get an order with its line items
// @Tags         orders
// @Success      200 {object} dto.Response{data=order.OrderResponse}
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	o, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, o)
}

// List godoc
// @Summary      List orders, newest first
// @Tags         orders
// @Success      200 {object} dto.Response{data=[]order.OrderListResponse}
// @Router       /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// SearchByGroup godoc
// @Summary      List a group's orders, paginated
// @Tags         orders
// @Param        group_id query string false "Group ID" format(uuid)
// @Param        page query int false "Page number"
// @Param        page_size query int false "Items per page"
// @Success      200 {object} dto.Response{data=[]order.GroupOrderResponse}
// @Router       /orders/search [get]
func (h *OrderHandler) SearchByGroup(c *gin.Context) {
	var groupID *uuid.UUID
	if raw := c.Query("group_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid group ID format")
			return
		}
		groupID = &id
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	result, err := h.orderService.SearchByGroup(c.Request.Context(), groupID, page, pageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Delete godoc
// @Summary      Delete an order and its line items
// @Tags         orders
// @Success      204
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
