package handler

import (
	paymentapp "github.com/celly/backoffice/internal/application/payment"
	"github.com/gin-gonic/gin"
)

// PaymentMethodHandler handles payment method API endpoints
type PaymentMethodHandler struct {
	BaseHandler
	methodService *paymentapp.MethodService
}

// NewPaymentMethodHandler creates a new PaymentMethodHandler
func NewPaymentMethodHandler(base BaseHandler, methodService *paymentapp.MethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		BaseHandler:   base,
		methodService: methodService,
	}
}

// Create godoc
// @Summary      Create a payment method
// @Tags         payment-methods
// @Success      201 {object} dto.Response{data=payment.MethodResponse}
// @Router       /payment-methods [post]
func (h *PaymentMethodHandler) Create(c *gin.Context) {
	var req paymentapp.CreateMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	method, err := h.methodService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, method)
}

// GetByID godoc
// @Summary      Get a payment method by ID
// @Tags         payment-methods
// @Success      200 {object} dto.Response{data=payment.MethodResponse}
// @Router       /payment-methods/{id} [get]
func (h *PaymentMethodHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid payment method ID format")
		return
	}

	method, err := h.methodService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, method)
}

// List godoc
// @Summary      List payment methods
// @Tags         payment-methods
// @Param        enabled query bool false "Only enabled methods"
// @Success      200 {object} dto.Response{data=[]payment.MethodResponse}
// @Router       /payment-methods [get]
func (h *PaymentMethodHandler) List(c *gin.Context) {
	var (
		methods []paymentapp.MethodResponse
		err     error
	)
	if c.Query("enabled") == "true" {
		methods, err = h.methodService.ListEnabled(c.Request.Context())
	} else {
		methods, err = h.methodService.List(c.Request.Context())
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, methods)
}

// Update godoc
// @Summary      Update a payment method
// @Tags         payment-methods
// @Success      200 {object} dto.Response{data=payment.MethodResponse}
// @Router       /payment-methods/{id} [put]
func (h *PaymentMethodHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid payment method ID format")
		return
	}

	var req paymentapp.UpdateMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	method, err := h.methodService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, method)
}

// Disable godoc
// @Summary      Disable a payment method
// @Tags         payment-methods
// @Success      200 {object} dto.Response{data=payment.MethodResponse}
// @Router       /payment-methods/{id} [delete]
func (h *PaymentMethodHandler) Disable(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid payment method ID format")
		return
	}

	method, err := h.methodService.Disable(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, method)
}
