package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "kolosaldash/docs" // registers the OpenAPI document
	"kolosaldash/internal/handler"
	"kolosaldash/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Health    *handler.HealthHandler
	Status    *handler.StatusHandler
	Documents *handler.DocumentHandler
	Retrieve  *handler.RetrieveHandler
	Engines   *handler.EngineHandler
	Ingest    *handler.IngestHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(h Handlers, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	// Engine IDs may contain an escaped slash.
	r.UseRawPath = true
	r.UnescapePathValues = true

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	api.GET("/status", h.Status.Get)

	docs := api.Group("/documents")
	docs.GET("", h.Documents.Page)
	docs.GET("/list", h.Documents.List)
	docs.GET("/export", h.Documents.Export)
	docs.POST("/info", h.Documents.Info)
	docs.DELETE("", h.Documents.Delete)

	api.POST("/retrieve", h.Retrieve.Retrieve)

	engines := api.Group("/engines")
	engines.GET("", h.Engines.Status)
	engines.POST("", h.Engines.Add)
	engines.DELETE("/:engineId", h.Engines.Remove)

	// Single-shot pipeline steps
	api.POST("/parse", h.Ingest.ParseDocument)
	api.POST("/chunk", h.Ingest.ChunkText)
	api.POST("/add-documents", h.Ingest.AddDocuments)

	// Ingestion runs
	runs := api.Group("/ingest/runs")
	runs.POST("", h.Ingest.CreateRun)
	runs.GET("/:runId", h.Ingest.GetRun)
	runs.DELETE("/:runId", h.Ingest.DiscardRun)
	runs.PUT("/:runId/source", h.Ingest.Configure)
	runs.POST("/:runId/parse", h.Ingest.Parse)
	runs.POST("/:runId/chunk", h.Ingest.Chunk)
	runs.POST("/:runId/process", h.Ingest.Process)
	runs.POST("/:runId/commit", h.Ingest.Commit)
	runs.PUT("/:runId/chunks/:chunkId", h.Ingest.SaveEdit)
	runs.DELETE("/:runId/chunks/:chunkId", h.Ingest.DeleteChunk)
	runs.POST("/:runId/chunks/:chunkId/edit", h.Ingest.BeginEdit)
	runs.DELETE("/:runId/chunks/:chunkId/edit", h.Ingest.CancelEdit)

	return r
}
