package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/remote"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
// Messages of pipeline errors carry the backend and status text so the UI can show them.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_INPUT", err.Error()
	case errors.Is(err, domain.ErrUnsupportedParser):
		return http.StatusBadRequest, "UNSUPPORTED_PARSER", err.Error()
	case errors.Is(err, domain.ErrInvalidMetadata):
		return http.StatusBadRequest, "INVALID_METADATA", "Invalid JSON in metadata"
	case errors.Is(err, domain.ErrNothingToCommit):
		return http.StatusBadRequest, "NOTHING_TO_COMMIT", "No documents to add"
	case errors.Is(err, domain.ErrRunNotFound):
		return http.StatusNotFound, "RUN_NOT_FOUND", "ingestion run not found"
	case errors.Is(err, domain.ErrChunkNotFound):
		return http.StatusNotFound, "CHUNK_NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrRunBusy):
		return http.StatusConflict, "RUN_BUSY", "a request for this ingestion run is still in progress"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, "INVALID_TRANSITION", err.Error()
	case errors.Is(err, domain.ErrParseNotReady):
		return http.StatusServiceUnavailable, "PARSE_NOT_READY", err.Error()
	case errors.Is(err, domain.ErrParseFailed):
		return http.StatusBadGateway, "PARSE_FAILED", err.Error()
	case errors.Is(err, domain.ErrChunkingFailed):
		return http.StatusBadGateway, "CHUNKING_FAILED", err.Error()
	case errors.Is(err, domain.ErrCommitFailed):
		return http.StatusBadGateway, "COMMIT_FAILED", err.Error()
	case errors.Is(err, domain.ErrRemoteUnavailable):
		return http.StatusServiceUnavailable, "REMOTE_UNAVAILABLE", err.Error()
	case errors.Is(err, domain.ErrRemoteRequest):
		if se, ok := remote.AsStatusError(err); ok {
			msg := se.Status
			if se.Message != "" {
				msg = se.Message
			}
			return se.StatusCode, "REMOTE_ERROR", msg
		}
		return http.StatusBadGateway, "REMOTE_ERROR", err.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] %s error: %v", requestID, code, err)
	}
	RespondError(c, status, code, msg)
}
