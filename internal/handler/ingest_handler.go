package handler

import (
	"context"
	"errors"
	"fmt"
	"math"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/ingest"
	"kolosaldash/internal/parser"
	"kolosaldash/internal/service"
)

// IngestHandler serves ingestion runs and the single-shot parse, chunk and
// add-documents endpoints.
type IngestHandler struct {
	ingestService  service.IngestService
	maxUploadBytes int64
}

// NewIngestHandler creates a new IngestHandler. Uploads larger than
// maxUploadBytes are rejected; zero means 50MB.
func NewIngestHandler(ingestService service.IngestService, maxUploadBytes int64) *IngestHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 50 << 20
	}
	return &IngestHandler{ingestService: ingestService, maxUploadBytes: maxUploadBytes}
}

var errFileTooLarge = errors.New("file exceeds maximum allowed size")

// readSource reads either the uploaded "file" or the "text" form field.
func (h *IngestHandler) readSource(c *gin.Context, docType domain.DocumentType) (parser.Source, error) {
	if docType == domain.DocumentTypeText {
		return parser.Source{Text: c.PostForm("text")}, nil
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		return parser.Source{}, fmt.Errorf("%w: file field is required", domain.ErrInvalidInput)
	}
	defer func() { _ = file.Close() }()

	if header.Size > h.maxUploadBytes {
		return parser.Source{}, errFileTooLarge
	}
	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		return parser.Source{}, fmt.Errorf("%w: reading upload: %v", domain.ErrInvalidInput, err)
	}
	if int64(len(data)) > h.maxUploadBytes {
		return parser.Source{}, errFileTooLarge
	}
	return parser.Source{Filename: header.Filename, Data: data}, nil
}

// readSettings parses the form fields that select document type, parser and chunking.
func readSettings(c *gin.Context) (ingest.Settings, error) {
	var settings ingest.Settings

	docType, err := domain.ParseDocumentType(c.PostForm("documentType"))
	if err != nil {
		return settings, err
	}
	settings.DocumentType = docType

	if raw := c.PostForm("parserType"); raw != "" {
		p, err := domain.ParseParserType(raw)
		if err != nil {
			return settings, err
		}
		settings.Parser = p
	}
	if raw := c.PostForm("chunkingType"); raw != "" {
		m, err := domain.ParseChunkingMethod(raw)
		if err != nil {
			return settings, err
		}
		settings.Chunking = m
	}
	if raw := strings.TrimSpace(c.PostForm("similarityThreshold")); raw != "" {
		t, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(t) || math.IsInf(t, 0) {
			return settings, fmt.Errorf("%w: similarityThreshold must be a number", domain.ErrInvalidInput)
		}
		settings.SimilarityThreshold = t
	}
	return settings, nil
}

func (h *IngestHandler) handleSourceError(c *gin.Context, err error) {
	if errors.Is(err, errFileTooLarge) {
		RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		return
	}
	HandleError(c, err)
}

// ParseDocument handles POST /api/parse
// @Summary Parse a document
// @Description Converts an uploaded file (or literal text) into text and metadata with the selected parser.
// @Tags ingest
// @Accept multipart/form-data
// @Produce json
// @Param documentType formData string true "pdf, docx, xlsx, pptx, html or text"
// @Param parserType formData string false "fast-parse, markdown-conversion, ocr-conversion (or kolosal, markitdown, docling); none for text"
// @Param file formData file false "Document to parse"
// @Param text formData string false "Literal text when documentType is text"
// @Success 200 {object} Response{data=domain.ParsedDocument}
// @Failure 400 {object} ErrorResponseBody "Missing fields or unsupported parser"
// @Failure 502 {object} ErrorResponseBody "Parser backend error"
// @Failure 503 {object} ErrorResponseBody "OCR conversion still pending"
// @Router /parse [post]
func (h *IngestHandler) ParseDocument(c *gin.Context) {
	settings, err := readSettings(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	if settings.Parser == "" {
		if settings.DocumentType != domain.DocumentTypeText {
			RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "parserType is required")
			return
		}
		settings.Parser = domain.ParserNone
	}

	src, err := h.readSource(c, settings.DocumentType)
	if err != nil {
		h.handleSourceError(c, err)
		return
	}

	doc, err := h.ingestService.ParseDocument(c.Request.Context(), src, settings.DocumentType, settings.Parser)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// ChunkText handles POST /api/chunk
// @Summary Chunk text
// @Description Splits text with the regular, semantic or none method. The threshold is only sent for semantic chunking.
// @Tags ingest
// @Accept json
// @Produce json
// @Param request body ChunkRequest true "Text to chunk"
// @Success 200 {object} Response{data=ChunkResponse}
// @Failure 400 {object} ErrorResponseBody "Missing fields"
// @Failure 502 {object} ErrorResponseBody "Chunking backend error"
// @Router /chunk [post]
func (h *IngestHandler) ChunkText(c *gin.Context) {
	var req ChunkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "text and method are required")
		return
	}
	method, err := domain.ParseChunkingMethod(req.Method)
	if err != nil {
		HandleError(c, err)
		return
	}

	chunks, err := h.ingestService.ChunkText(c.Request.Context(), req.Text, method, req.SimilarityThreshold, req.Metadata)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, ChunkResponse{Chunks: chunks})
}

// AddDocuments handles POST /api/add-documents
// @Summary Add documents
// @Description Submits {text, metadata} pairs to the collection in one batch.
// @Tags ingest
// @Accept json
// @Produce json
// @Param request body AddDocumentsRequest true "Documents"
// @Success 200 {object} Response{data=object}
// @Failure 400 {object} ErrorResponseBody "Documents array is required"
// @Failure 502 {object} ErrorResponseBody "Inference server error"
// @Router /add-documents [post]
func (h *IngestHandler) AddDocuments(c *gin.Context) {
	var req AddDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "documents array is required")
		return
	}

	res, err := h.ingestService.AddDocuments(c.Request.Context(), req.Documents)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, res)
}

// CreateRun handles POST /api/ingest/runs
// @Summary Start an ingestion run
// @Tags ingest
// @Produce json
// @Success 201 {object} Response{data=ingest.Snapshot}
// @Router /ingest/runs [post]
func (h *IngestHandler) CreateRun(c *gin.Context) {
	RespondCreated(c, h.ingestService.CreateRun())
}

// GetRun handles GET /api/ingest/runs/:runId
// @Summary Get an ingestion run
// @Tags ingest
// @Produce json
// @Param runId path string true "Run ID"
// @Success 200 {object} Response{data=ingest.Snapshot}
// @Failure 404 {object} ErrorResponseBody "Run not found"
// @Router /ingest/runs/{runId} [get]
func (h *IngestHandler) GetRun(c *gin.Context) {
	snap, err := h.ingestService.GetRun(c.Param("runId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, snap)
}

// DiscardRun handles DELETE /api/ingest/runs/:runId
// @Summary Discard an ingestion run
// @Tags ingest
// @Produce json
// @Param runId path string true "Run ID"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 404 {object} ErrorResponseBody "Run not found"
// @Failure 409 {object} ErrorResponseBody "Request in progress"
// @Router /ingest/runs/{runId} [delete]
func (h *IngestHandler) DiscardRun(c *gin.Context) {
	if err := h.ingestService.DiscardRun(c.Param("runId")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "ingestion run discarded"})
}

// Configure handles PUT /api/ingest/runs/:runId/source
// @Summary Configure an ingestion run
// @Description Sets document type, parser, chunking method and the file or text. Earlier results are dropped.
// @Tags ingest
// @Accept multipart/form-data
// @Produce json
// @Param runId path string true "Run ID"
// @Param documentType formData string true "pdf, docx, xlsx, pptx, html or text"
// @Param parserType formData string false "Parser; defaults to none for text"
// @Param chunkingType formData string true "regular, semantic or none"
// @Param similarityThreshold formData number false "Semantic chunking threshold" default(0.6)
// @Param file formData file false "Document"
// @Param text formData string false "Literal text"
// @Success 200 {object} Response{data=ingest.Snapshot}
// @Failure 400 {object} ErrorResponseBody "Invalid settings"
// @Failure 409 {object} ErrorResponseBody "Request in progress"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Router /ingest/runs/{runId}/source [put]
func (h *IngestHandler) Configure(c *gin.Context) {
	settings, err := readSettings(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	src, err := h.readSource(c, settings.DocumentType)
	if err != nil {
		h.handleSourceError(c, err)
		return
	}

	snap, err := h.ingestService.Configure(c.Param("runId"), settings, src)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, snap)
}

// Parse handles POST /api/ingest/runs/:runId/parse
// @Summary Parse the run's document
// @Description Re-issuing after a failure retries the same request.
// @Tags ingest
// @Produce json
// @Param runId path string true "Run ID"
// @Success 200 {object} Response{data=ingest.Snapshot}
// @Failure 409 {object} ErrorResponseBody "Wrong step or request in progress"
// @Failure 502 {object} ErrorResponseBody "Parse failed"
// @Failure 503 {object} ErrorResponseBody "OCR conversion still pending"
// @Router /ingest/runs/{runId}/parse [post]
func (h *IngestHandler) Parse(c *gin.Context) {
	h.runStep(c, h.ingestService.Parse)
}

// Chunk handles POST /api/ingest/runs/:runId/chunk
// @Summary Chunk the parsed text
// @Tags ingest
// @Produce json
// @Param runId path string true "Run ID"
// @Success 200 {object} Response{data=ingest.Snapshot}
// @Failure 409 {object} ErrorResponseBody "Wrong step or request in progress"
// @Failure 502 {object} ErrorResponseBody "Chunking failed"
// @Router /ingest/runs/{runId}/chunk [post]
func (h *IngestHandler) Chunk(c *gin.Context) {
	h.runStep(c, h.ingestService.Chunk)
}

// Process handles POST /api/ingest/runs/:runId/process
// @Summary Parse and chunk in one step
// @Tags ingest
// @Produce json
// @Param runId path string true "Run ID"
// @Success 200 {object} Response{data=ingest.Snapshot}
// @Failure 409 {object} ErrorResponseBody "Wrong step or request in progress"
// @Failure 502 {object} ErrorResponseBody "Parse or chunking failed"
// @Router /ingest/runs/{runId}/process [post]
func (h *IngestHandler) Process(c *gin.Context) {
	h.runStep(c, h.ingestService.Process)
}

func (h *IngestHandler) runStep(c *gin.Context, step func(ctx context.Context, id string) (*ingest.Snapshot, error)) {
	snap, err := step(c.Request.Context(), c.Param("runId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, snap)
}

// BeginEdit handles POST /api/ingest/runs/:runId/chunks/:chunkId/edit
// @Summary Start editing a chunk
// @Tags ingest
// @Produce json
// @Param runId path string true "Run ID"
// @Param chunkId path string true "Chunk ID"
// @Success 200 {object} Response{data=ingest.Snapshot}
// @Failure 404 {object} ErrorResponseBody "Chunk not found"
// @Router /ingest/runs/{runId}/chunks/{chunkId}/edit [post]
func (h *IngestHandler) BeginEdit(c *gin.Context) {
	snap, err := h.ingestService.BeginEdit(c.Param("runId"), c.Param("chunkId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, snap)
}

// SaveEdit handles PUT /api/ingest/runs/:runId/chunks/:chunkId
// @Summary Save a chunk edit
// @Description metadata is JSON text; it must parse to an object or the chunk is left unchanged.
// @Tags ingest
// @Accept json
// @Produce json
// @Param runId path string true "Run ID"
// @Param chunkId path string true "Chunk ID"
// @Param request body SaveChunkRequest true "Edited chunk"
// @Success 200 {object} Response{data=ingest.Snapshot}
// @Failure 400 {object} ErrorResponseBody "Invalid JSON in metadata"
// @Failure 404 {object} ErrorResponseBody "Chunk not found"
// @Router /ingest/runs/{runId}/chunks/{chunkId} [put]
func (h *IngestHandler) SaveEdit(c *gin.Context) {
	var req SaveChunkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	snap, err := h.ingestService.SaveEdit(c.Param("runId"), c.Param("chunkId"), req.Text, req.Metadata)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, snap)
}

// CancelEdit handles DELETE /api/ingest/runs/:runId/chunks/:chunkId/edit
// @Summary Cancel a chunk edit
// @Tags ingest
// @Produce json
// @Param runId path string true "Run ID"
// @Param chunkId path string true "Chunk ID"
// @Success 200 {object} Response{data=ingest.Snapshot}
// @Failure 404 {object} ErrorResponseBody "Chunk not found"
// @Router /ingest/runs/{runId}/chunks/{chunkId}/edit [delete]
func (h *IngestHandler) CancelEdit(c *gin.Context) {
	snap, err := h.ingestService.CancelEdit(c.Param("runId"), c.Param("chunkId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, snap)
}

// DeleteChunk handles DELETE /api/ingest/runs/:runId/chunks/:chunkId
// @Summary Remove a staged chunk
// @Tags ingest
// @Produce json
// @Param runId path string true "Run ID"
// @Param chunkId path string true "Chunk ID"
// @Success 200 {object} Response{data=ingest.Snapshot}
// @Failure 404 {object} ErrorResponseBody "Chunk not found"
// @Router /ingest/runs/{runId}/chunks/{chunkId} [delete]
func (h *IngestHandler) DeleteChunk(c *gin.Context) {
	snap, err := h.ingestService.DeleteChunk(c.Param("runId"), c.Param("chunkId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, snap)
}

// Commit handles POST /api/ingest/runs/:runId/commit
// @Summary Commit staged chunks
// @Description Adds every staged chunk to the collection. Success resets the run; failure keeps it for a retry.
// @Tags ingest
// @Produce json
// @Param runId path string true "Run ID"
// @Success 200 {object} Response{data=CommitResponse}
// @Failure 400 {object} ErrorResponseBody "No documents to add"
// @Failure 502 {object} ErrorResponseBody "Inference server error"
// @Router /ingest/runs/{runId}/commit [post]
func (h *IngestHandler) Commit(c *gin.Context) {
	result, snap, err := h.ingestService.Commit(c.Request.Context(), c.Param("runId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, CommitResponse{Result: result, Run: snap})
}
