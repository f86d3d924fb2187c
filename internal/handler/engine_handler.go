package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kolosaldash/internal/service"
)

// EngineHandler manages engines on the inference server.
type EngineHandler struct {
	engineService service.EngineService
}

// NewEngineHandler creates a new EngineHandler.
func NewEngineHandler(engineService service.EngineService) *EngineHandler {
	return &EngineHandler{engineService: engineService}
}

// Status handles GET /api/engines
// @Summary Engine status
// @Tags engines
// @Produce json
// @Success 200 {object} Response{data=domain.InferenceStatus}
// @Failure 502 {object} ErrorResponseBody "Inference server error"
// @Router /engines [get]
func (h *EngineHandler) Status(c *gin.Context) {
	status, err := h.engineService.Status(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, status)
}

// Add handles POST /api/engines
// @Summary Add a model
// @Description Registers a model. Omitted fields take the form defaults (llama-cpu, main_gpu_id -1, n_ctx 4096, n_batch 512, ...).
// @Tags engines
// @Accept json
// @Produce json
// @Param request body domain.AddModelRequest true "Model definition"
// @Success 201 {object} Response{data=object}
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Router /engines [post]
func (h *EngineHandler) Add(c *gin.Context) {
	req := service.DefaultAddModelRequest()
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body: "+err.Error())
		return
	}

	res, err := h.engineService.AddModel(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, res)
}

// Remove handles DELETE /api/engines/:engineId
// @Summary Remove a model
// @Tags engines
// @Produce json
// @Param engineId path string true "Engine ID"
// @Success 200 {object} Response{data=MessageResponse}
// @Router /engines/{engineId} [delete]
func (h *EngineHandler) Remove(c *gin.Context) {
	engineID := c.Param("engineId")
	if err := h.engineService.RemoveModel(c.Request.Context(), engineID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "engine removed"})
}
