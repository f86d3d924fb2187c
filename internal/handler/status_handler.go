package handler

import (
	"github.com/gin-gonic/gin"

	"kolosaldash/internal/service"
)

// StatusHandler serves the aggregated collaborator health.
type StatusHandler struct {
	statusService service.StatusService
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(statusService service.StatusService) *StatusHandler {
	return &StatusHandler{statusService: statusService}
}

// Get handles GET /api/status
// @Summary Dashboard status
// @Description Health of the inference, markdown-conversion and OCR-conversion services plus the document collection summary. Unreachable services are reported as unavailable.
// @Tags status
// @Produce json
// @Success 200 {object} Response{data=domain.DashboardStatus}
// @Router /status [get]
func (h *StatusHandler) Get(c *gin.Context) {
	RespondOK(c, h.statusService.Dashboard(c.Request.Context()))
}
