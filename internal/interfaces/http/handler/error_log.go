package handler

import (
	"strconv"
	"time"

	auditapp "github.com/celly/backoffice/internal/application/audit"
	"github.com/celly/backoffice/internal/domain/audit"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorLogHandler exposes recently recorded operation failures
type ErrorLogHandler struct {
	BaseHandler
	recorder *auditapp.Recorder
}

// NewErrorLogHandler creates a new ErrorLogHandler
func NewErrorLogHandler(base BaseHandler, recorder *auditapp.Recorder) *ErrorLogHandler {
	return &ErrorLogHandler{
		BaseHandler: base,
		recorder:    recorder,
	}
}

// ErrorLogResponse represents an error-log entry in API responses
type ErrorLogResponse struct {
	ID        uuid.UUID  `json:"id"`
	Message   string     `json:"message"`
	Stack     string     `json:"stack"`
	Info      string     `json:"info"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// List godoc
// @Summary      List recent error-log entries, newest first
// @Tags         error-logs
// @Param        limit query int false "Maximum entries" default(50)
// @Success      200 {object} dto.Response{data=[]handler.ErrorLogResponse}
// @Router       /error-logs [get]
func (h *ErrorLogHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	logs, err := h.recorder.Recent(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toErrorLogResponses(logs))
}

func toErrorLogResponses(logs []audit.ErrorLog) []ErrorLogResponse {
	out := make([]ErrorLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, ErrorLogResponse{
			ID:        l.ID,
			Message:   l.Message,
			Stack:     l.Stack,
			Info:      l.Info,
			UserID:    l.UserID,
			CreatedAt: l.CreatedAt,
		})
	}
	return out
}
