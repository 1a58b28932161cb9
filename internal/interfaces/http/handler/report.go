package handler

import (
	reportapp "github.com/celly/backoffice/internal/application/report"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles sales report API endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.Service
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(base BaseHandler, reportService *reportapp.Service) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   base,
		reportService: reportService,
	}
}

// GetReports godoc
// @Summary      Build a sales report for a date window
// @Tags         reports
// @Success      200 {object} dto.Response{data=report.Response}
// @Router       /reports [post]
func (h *ReportHandler) GetReports(c *gin.Context) {
	var req reportapp.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.reportService.GetReports(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
