// Package app builds the collaborator clients and services from configuration.
package app

import (
	"kolosaldash/internal/config"
	"kolosaldash/internal/ingest"
	"kolosaldash/internal/parser"
	"kolosaldash/internal/remote/docling"
	"kolosaldash/internal/remote/kolosal"
	"kolosaldash/internal/remote/markitdown"
	"kolosaldash/internal/service"
)

// App holds everything the HTTP server and the CLI share.
type App struct {
	Kolosal    *kolosal.Client
	Markitdown *markitdown.Client
	Docling    *docling.Client

	Runs *ingest.Store

	Status    service.StatusService
	Documents service.DocumentService
	Retrieve  service.RetrieveService
	Engines   service.EngineService
	Ingest    service.IngestService
}

// New wires the clients and services. No network call is made.
func New(cfg *config.Config) *App {
	timeout := cfg.Services.Timeout()

	// Initialize clients
	kolosalClient := kolosal.NewClient(cfg.Services.KolosalURL, timeout)
	markitdownClient := markitdown.NewClient(cfg.Services.MarkitdownURL, timeout)
	doclingClient := docling.NewClient(cfg.Services.DoclingURL, timeout)

	// Initialize the ingestion pipeline
	dispatcher := parser.NewDispatcher(kolosalClient, markitdownClient, doclingClient)
	chunker := ingest.NewChunker(kolosalClient, cfg.Models.Embedding)
	committer := ingest.NewCommitter(kolosalClient)
	runs := ingest.NewStore(cfg.Ingest.RunTTL)

	return &App{
		Kolosal:    kolosalClient,
		Markitdown: markitdownClient,
		Docling:    doclingClient,
		Runs:       runs,
		Status:     service.NewStatusService(kolosalClient, kolosalClient, markitdownClient, doclingClient),
		Documents:  service.NewDocumentService(kolosalClient, cfg.Documents.PageSize),
		Retrieve:   service.NewRetrieveService(kolosalClient),
		Engines:    service.NewEngineService(kolosalClient),
		Ingest:     service.NewIngestService(runs, dispatcher, chunker, committer, kolosalClient),
	}
}
