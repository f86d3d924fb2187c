package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kolosaldash/internal/config"
	"kolosaldash/internal/ingest"
)

func jsonServer(t *testing.T, routes map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNew_WiresServicesToConfiguredCollaborators(t *testing.T) {
	kolosal := jsonServer(t, map[string]any{
		"/status":         map[string]any{"status": "running"},
		"/list_documents": map[string]any{"collection_name": "documents", "document_ids": []string{"a"}, "total_count": 1},
	})
	markitdown := jsonServer(t, map[string]any{"/health": map[string]any{"status": "healthy"}})
	docling := jsonServer(t, map[string]any{"/health": map[string]any{"status": "ok"}})

	a := New(&config.Config{
		Services: config.ServicesConfig{
			KolosalURL:    kolosal.URL,
			MarkitdownURL: markitdown.URL,
			DoclingURL:    docling.URL,
			TimeoutSecs:   5,
		},
		Models:    config.ModelsConfig{Embedding: "qwen3-embedding-4b"},
		Documents: config.DocumentsConfig{PageSize: 10},
	})

	require.NotNil(t, a.Runs)
	st := a.Status.Dashboard(context.Background())

	require.NotNil(t, st.InferenceStatus)
	assert.Equal(t, "running", st.InferenceStatus.Status)
	assert.Equal(t, "healthy", st.MarkitdownStatus.Status)
	assert.Equal(t, "ok", st.DoclingStatus.Status)
	require.NotNil(t, st.DocumentsData)
	assert.Equal(t, 1, st.DocumentsData.TotalCount)
}

func TestNew_IngestServiceSharesRunStore(t *testing.T) {
	a := New(&config.Config{Services: config.ServicesConfig{KolosalURL: "http://127.0.0.1:1"}})

	created := a.Ingest.CreateRun()
	run, err := a.Runs.Get(created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, run.ID())
	assert.Equal(t, ingest.StateIdle, run.State())
}
