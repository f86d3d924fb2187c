package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"kolosaldash/internal/domain"
)

// InferenceProbe reports whether the inference server answers.
type InferenceProbe interface {
	Status(ctx context.Context) (*domain.InferenceStatus, error)
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	inference InferenceProbe
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(inference InferenceProbe) *HealthHandler {
	return &HealthHandler{inference: inference}
}

// Liveness handles GET /healthz
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
// @Summary Readiness probe
// @Description Reports unavailable while the inference server cannot be reached.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	if _, err := h.inference.Status(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "inference server not reachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
