package domain

// ParsedDocument is the normalized output of a parser backend.
type ParsedDocument struct {
	Filename string         `json:"filename"`
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata"`
}

// Chunk is a text segment staged for review before it is committed.
// ID is a locally generated sequence token, not a server identifier.
type Chunk struct {
	ID       string         `json:"id"`
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata"`
	Editing  bool           `json:"editing"`
}

// DocumentInput is a single {text, metadata} pair accepted by the add-documents endpoint.
type DocumentInput struct {
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata"`
}

// EngineStatus is a single engine entry on the inference server.
type EngineStatus struct {
	EngineID string `json:"engine_id"`
	Status   string `json:"status"`
}

// NodeManagerStatus summarizes engine loading on the inference server.
type NodeManagerStatus struct {
	Autoscaling     string `json:"autoscaling"`
	LoadedEngines   int    `json:"loaded_engines"`
	TotalEngines    int    `json:"total_engines"`
	UnloadedEngines int    `json:"unloaded_engines"`
}

// ServerInfo identifies the inference server build.
type ServerInfo struct {
	Name    string `json:"name"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

// InferenceStatus is the response of the inference server's GET /status.
type InferenceStatus struct {
	Engines     []EngineStatus     `json:"engines,omitempty"`
	NodeManager *NodeManagerStatus `json:"node_manager,omitempty"`
	Server      *ServerInfo        `json:"server,omitempty"`
	Status      string             `json:"status"`
	Timestamp   int64              `json:"timestamp,omitempty"`
}

// ServiceStatus is the health payload of the conversion services.
type ServiceStatus struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
}

// DocumentList is the response of GET /list_documents.
type DocumentList struct {
	CollectionName string   `json:"collection_name"`
	DocumentIDs    []string `json:"document_ids"`
	TotalCount     int      `json:"total_count"`
}

// DocumentInfo is a stored document as returned by the inference server.
type DocumentInfo struct {
	ID       string         `json:"id"`
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata"`
}

// DocumentInfoResult is the response of POST /info_documents.
type DocumentInfoResult struct {
	CollectionName string         `json:"collection_name"`
	Documents      []DocumentInfo `json:"documents"`
	FoundCount     int            `json:"found_count"`
	NotFoundCount  int            `json:"not_found_count"`
	NotFoundIDs    []string       `json:"not_found_ids"`
}

// DocumentPage is one page of the document browser.
type DocumentPage struct {
	CollectionName string         `json:"collection_name"`
	Documents      []DocumentInfo `json:"documents"`
	Page           int            `json:"page"`
	PageSize       int            `json:"page_size"`
	TotalPages     int            `json:"total_pages"`
	TotalCount     int            `json:"total_count"`
}

// DocumentExport is the full collection as fetched for download.
type DocumentExport struct {
	CollectionName string         `json:"collection_name"`
	Documents      []DocumentInfo `json:"documents"`
	NotFoundIDs    []string       `json:"not_found_ids,omitempty"`
}

// RetrievedDocument is a single retrieval hit.
type RetrievedDocument struct {
	ID       string         `json:"id"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
	Score    *float64       `json:"score,omitempty"`
}

// RetrieveQuery carries the parameters of a retrieval request.
type RetrieveQuery struct {
	Query          string  `json:"query"`
	Limit          int     `json:"limit"`
	ScoreThreshold float64 `json:"score_threshold"`
}

// RetrieveResult is the dashboard's retrieval response.
type RetrieveResult struct {
	Documents    []RetrievedDocument `json:"documents"`
	Query        string              `json:"query"`
	TotalResults int                 `json:"total_results"`
	ElapsedTime  int64               `json:"elapsed_time"`
}

// LoadingParameters tune how the inference server loads a model.
type LoadingParameters struct {
	NCtx         int  `json:"n_ctx"`
	NKeep        int  `json:"n_keep"`
	NBatch       int  `json:"n_batch"`
	NUBatch      int  `json:"n_ubatch"`
	NParallel    int  `json:"n_parallel"`
	NGPULayers   int  `json:"n_gpu_layers"`
	UseMmap      bool `json:"use_mmap"`
	UseMlock     bool `json:"use_mlock"`
	ContBatching bool `json:"cont_batching"`
	Warmup       bool `json:"warmup"`
}

// AddModelRequest registers a model with the inference server.
type AddModelRequest struct {
	ModelID           string            `json:"model_id"`
	ModelPath         string            `json:"model_path"`
	ModelType         string            `json:"model_type"`
	InferenceEngine   string            `json:"inference_engine"`
	MainGPUID         int               `json:"main_gpu_id"`
	LoadImmediately   bool              `json:"load_immediately"`
	LoadingParameters LoadingParameters `json:"loading_parameters"`
}

// DashboardStatus aggregates the health of every collaborator.
type DashboardStatus struct {
	InferenceStatus  *InferenceStatus `json:"inferenceStatus"`
	MarkitdownStatus *ServiceStatus   `json:"markitdownStatus"`
	DoclingStatus    *ServiceStatus   `json:"doclingStatus"`
	DocumentsData    *DocumentList    `json:"documentsData"`
	LastUpdated      string           `json:"lastUpdated"`
}
