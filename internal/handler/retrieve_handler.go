package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kolosaldash/internal/service"
)

// RetrieveHandler handles similarity search.
type RetrieveHandler struct {
	retrieveService service.RetrieveService
}

// NewRetrieveHandler creates a new RetrieveHandler.
func NewRetrieveHandler(retrieveService service.RetrieveService) *RetrieveHandler {
	return &RetrieveHandler{retrieveService: retrieveService}
}

// Retrieve handles POST /api/retrieve
// @Summary Search documents
// @Description Similarity search over the collection. limit defaults to 10 and score_threshold to 0.5.
// @Tags retrieve
// @Accept json
// @Produce json
// @Param request body RetrieveRequest true "Search query"
// @Success 200 {object} Response{data=domain.RetrieveResult}
// @Failure 400 {object} ErrorResponseBody "Query is required"
// @Failure 502 {object} ErrorResponseBody "Inference server error"
// @Router /retrieve [post]
func (h *RetrieveHandler) Retrieve(c *gin.Context) {
	var req RetrieveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "query is required")
		return
	}

	result, err := h.retrieveService.Retrieve(c.Request.Context(), req.Query, req.Limit, req.ScoreThreshold)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}
