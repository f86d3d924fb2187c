package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Default collaborator locations (internal Docker network).
const (
	DefaultKolosalURL     = "http://host.docker.internal:8084"
	DefaultMarkitdownURL  = "http://host.docker.internal:8081"
	DefaultDoclingURL     = "http://host.docker.internal:8082"
	DefaultEmbeddingModel = "qwen3-embedding-4b"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Services  ServicesConfig
	Models    ModelsConfig
	CORS      CORSConfig
	Ingest    IngestConfig
	Documents DocumentsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// ServicesConfig holds base URLs of the external collaborators.
type ServicesConfig struct {
	KolosalURL    string `mapstructure:"kolosal_url"`
	MarkitdownURL string `mapstructure:"markitdown_url"`
	DoclingURL    string `mapstructure:"docling_url"`
	TimeoutSecs   int    `mapstructure:"timeout_secs"`
}

// Timeout returns the per-request timeout for outbound calls.
func (s *ServicesConfig) Timeout() time.Duration {
	if s.TimeoutSecs <= 0 {
		return 120 * time.Second
	}
	return time.Duration(s.TimeoutSecs) * time.Second
}

// ModelsConfig holds model names used by the dashboard.
type ModelsConfig struct {
	Embedding string `mapstructure:"embedding"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// IngestConfig holds ingestion run settings.
type IngestConfig struct {
	RunTTL        time.Duration `mapstructure:"run_ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	MaxUploadMB   int64         `mapstructure:"max_upload_mb"`
}

// DocumentsConfig holds document browser settings.
type DocumentsConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// Load reads configuration from environment variables with the DASHBOARD_ prefix.
// Collaborator URLs and the embedding model also honor their unprefixed names.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "180s")
	v.SetDefault("server.environment", "development")

	// Service defaults
	v.SetDefault("services.kolosal_url", DefaultKolosalURL)
	v.SetDefault("services.markitdown_url", DefaultMarkitdownURL)
	v.SetDefault("services.docling_url", DefaultDoclingURL)
	v.SetDefault("services.timeout_secs", 120)

	v.SetDefault("models.embedding", DefaultEmbeddingModel)

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Ingest defaults
	v.SetDefault("ingest.run_ttl", "30m")
	v.SetDefault("ingest.sweep_interval", "1m")
	v.SetDefault("ingest.max_upload_mb", 50)

	v.SetDefault("documents.page_size", 10)

	envBindings := map[string][]string{
		"server.port":             {"DASHBOARD_SERVER_PORT"},
		"server.read_timeout":     {"DASHBOARD_SERVER_READ_TIMEOUT"},
		"server.write_timeout":    {"DASHBOARD_SERVER_WRITE_TIMEOUT"},
		"server.environment":      {"DASHBOARD_SERVER_ENVIRONMENT"},
		"services.kolosal_url":    {"KOLOSAL_SERVER_URL", "DASHBOARD_SERVICES_KOLOSAL_URL"},
		"services.markitdown_url": {"MARKITDOWN_SERVER_URL", "DASHBOARD_SERVICES_MARKITDOWN_URL"},
		"services.docling_url":    {"DOCLING_SERVER_URL", "DASHBOARD_SERVICES_DOCLING_URL"},
		"services.timeout_secs":   {"DASHBOARD_SERVICES_TIMEOUT_SECS"},
		"models.embedding":        {"EMBEDDING_MODEL_NAME", "DASHBOARD_MODELS_EMBEDDING"},
		"cors.allowed_origins":    {"DASHBOARD_CORS_ALLOWED_ORIGINS"},
		"ingest.run_ttl":          {"DASHBOARD_INGEST_RUN_TTL"},
		"ingest.sweep_interval":   {"DASHBOARD_INGEST_SWEEP_INTERVAL"},
		"ingest.max_upload_mb":    {"DASHBOARD_INGEST_MAX_UPLOAD_MB"},
		"documents.page_size":     {"DASHBOARD_DOCUMENTS_PAGE_SIZE"},
	}
	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}

	cfg := &Config{}

	// Container platforms set PORT. Use it if DASHBOARD_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DASHBOARD_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Services = ServicesConfig{
		KolosalURL:    trimBaseURL(v.GetString("services.kolosal_url")),
		MarkitdownURL: trimBaseURL(v.GetString("services.markitdown_url")),
		DoclingURL:    trimBaseURL(v.GetString("services.docling_url")),
		TimeoutSecs:   v.GetInt("services.timeout_secs"),
	}
	cfg.Models = ModelsConfig{
		Embedding: v.GetString("models.embedding"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Ingest = IngestConfig{
		RunTTL:        v.GetDuration("ingest.run_ttl"),
		SweepInterval: v.GetDuration("ingest.sweep_interval"),
		MaxUploadMB:   v.GetInt64("ingest.max_upload_mb"),
	}
	cfg.Documents = DocumentsConfig{
		PageSize: v.GetInt("documents.page_size"),
	}

	return cfg, nil
}

func trimBaseURL(u string) string {
	return strings.TrimRight(strings.TrimSpace(u), "/")
}
