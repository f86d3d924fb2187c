package handler

import (
	"kolosaldash/internal/domain"
	"kolosaldash/internal/ingest"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// DocumentInfoRequest represents the document info request body.
type DocumentInfoRequest struct {
	IDs []string `json:"ids" binding:"required" example:"doc-1,doc-2"`
}

// DeleteDocumentsRequest represents the delete documents request body.
type DeleteDocumentsRequest struct {
	DocumentIDs []string `json:"document_ids" binding:"required" example:"doc-1,doc-2"`
}

// RetrieveRequest represents the retrieve request body.
type RetrieveRequest struct {
	Query          string  `json:"query" binding:"required" example:"how do I load a model"`
	Limit          int     `json:"limit" example:"10"`
	ScoreThreshold float64 `json:"score_threshold" example:"0.5"`
}

// ChunkRequest represents the chunk request body.
type ChunkRequest struct {
	Text                string         `json:"text" binding:"required" example:"First paragraph. Second paragraph."`
	Method              string         `json:"method" binding:"required" example:"semantic"`
	SimilarityThreshold float64        `json:"similarity_threshold" example:"0.6"`
	Metadata            map[string]any `json:"metadata"`
}

// AddDocumentsRequest represents the add documents request body.
type AddDocumentsRequest struct {
	Documents []domain.DocumentInput `json:"documents" binding:"required"`
}

// SaveChunkRequest represents an edited chunk. Metadata is JSON text as typed by the user.
type SaveChunkRequest struct {
	Text     string `json:"text" example:"Edited chunk text"`
	Metadata string `json:"metadata" example:"{\"source\":\"manual\"}"`
}

// --- Response Types ---

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"inference server not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// ChunkResponse holds the chunks produced by the chunk endpoint.
type ChunkResponse struct {
	Chunks []domain.Chunk `json:"chunks"`
}

// CommitResponse holds the commit outcome and the reset run.
type CommitResponse struct {
	Result *ingest.CommitResult `json:"result"`
	Run    *ingest.Snapshot     `json:"run"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
