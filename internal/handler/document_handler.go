package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kolosaldash/internal/export"
	"kolosaldash/internal/service"
)

// DocumentHandler handles the document browser endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Page handles GET /api/documents
// @Summary Browse documents
// @Description One page of stored documents with their text and metadata. Out-of-range pages return page 1.
// @Tags documents
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} Response{data=domain.DocumentPage,meta=PagMeta}
// @Failure 502 {object} ErrorResponseBody "Inference server error"
// @Router /documents [get]
func (h *DocumentHandler) Page(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.documentService.Page(c.Request.Context(), page)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, result, PagMeta{
		Total:  result.TotalCount,
		Offset: (result.Page - 1) * result.PageSize,
		Limit:  result.PageSize,
	})
}

// List handles GET /api/documents/list
// @Summary List document IDs
// @Tags documents
// @Produce json
// @Success 200 {object} Response{data=domain.DocumentList}
// @Failure 502 {object} ErrorResponseBody "Inference server error"
// @Router /documents/list [get]
func (h *DocumentHandler) List(c *gin.Context) {
	list, err := h.documentService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, list)
}

// Info handles POST /api/documents/info
// @Summary Get documents by ID
// @Tags documents
// @Accept json
// @Produce json
// @Param request body DocumentInfoRequest true "Document IDs"
// @Success 200 {object} Response{data=domain.DocumentInfoResult}
// @Failure 400 {object} ErrorResponseBody "Missing IDs"
// @Failure 502 {object} ErrorResponseBody "Inference server error"
// @Router /documents/info [post]
func (h *DocumentHandler) Info(c *gin.Context) {
	var req DocumentInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "document IDs array is required")
		return
	}

	info, err := h.documentService.Info(c.Request.Context(), req.IDs)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, info)
}

// Delete handles DELETE /api/documents
// @Summary Delete documents
// @Tags documents
// @Accept json
// @Produce json
// @Param request body DeleteDocumentsRequest true "Document IDs"
// @Success 200 {object} Response{data=object}
// @Failure 400 {object} ErrorResponseBody "Missing IDs"
// @Failure 502 {object} ErrorResponseBody "Inference server error"
// @Router /documents [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	var req DeleteDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "document IDs array is required")
		return
	}

	res, err := h.documentService.Delete(c.Request.Context(), req.DocumentIDs)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, res)
}

// Export handles GET /api/documents/export
// @Summary Export documents
// @Description Downloads every stored document as CSV (UTF-8 with BOM) or XLSX.
// @Tags documents
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponseBody "Unknown format"
// @Failure 502 {object} ErrorResponseBody "Inference server error"
// @Router /documents/export [get]
func (h *DocumentHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		HandleError(c, err)
		return
	}

	result, err := h.documentService.Export(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(result.CollectionName, format)
	c.Header("Content-Type", format.ContentType())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	if err := export.Write(c.Writer, format, result.Documents); err != nil {
		log.Printf("handler.DocumentHandler: export write failed after headers sent: %v", err)
	}
}
