package domain

import "errors"

var (
	ErrParseFailed       = errors.New("parse failed")
	ErrParseNotReady     = errors.New("parse result not ready")
	ErrUnsupportedParser = errors.New("unsupported parser")
	ErrChunkingFailed    = errors.New("chunking failed")
	ErrInvalidMetadata   = errors.New("invalid metadata")
	ErrNothingToCommit   = errors.New("no documents to add")
	ErrCommitFailed      = errors.New("failed to add documents")
	ErrRemoteUnavailable = errors.New("remote service unavailable")
	ErrRemoteRequest     = errors.New("remote request failed")

	ErrInvalidInput      = errors.New("invalid input")
	ErrRunNotFound       = errors.New("ingestion run not found")
	ErrRunBusy           = errors.New("ingestion run has a request in flight")
	ErrInvalidTransition = errors.New("invalid ingestion step")
	ErrChunkNotFound     = errors.New("chunk not found")
)
