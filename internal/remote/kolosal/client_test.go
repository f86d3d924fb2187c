package kolosal_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/port"
	"kolosaldash/internal/remote"
	"kolosaldash/internal/remote/kolosal"
)

type recorded struct {
	method string
	path   string
	body   map[string]any
}

// newServer answers every request with response and records what it received.
func newServer(t *testing.T, status int, response string) (*kolosal.Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.EscapedPath()
		data, _ := io.ReadAll(r.Body)
		if len(data) > 0 {
			require.NoError(t, json.Unmarshal(data, &rec.body))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return kolosal.NewClient(server.URL, 5*time.Second), rec
}

func TestClient_Status(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{
		"status":"running",
		"engines":[{"engine_id":"qwen3-embedding-4b","status":"loaded"}],
		"node_manager":{"autoscaling":"enabled","loaded_engines":1,"total_engines":1,"unloaded_engines":0},
		"server":{"name":"Kolosal Inference Server","uptime":"3600","version":"1.0.0"},
		"timestamp":1700000000
	}`)

	st, err := c.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/status", rec.path)
	assert.Equal(t, "running", st.Status)
	require.Len(t, st.Engines, 1)
	assert.Equal(t, 1, st.NodeManager.LoadedEngines)
	assert.Equal(t, "1.0.0", st.Server.Version)
}

func TestClient_ListDocuments(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"collection_name":"documents","document_ids":["a","b"],"total_count":2}`)

	list, err := c.ListDocuments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/list_documents", rec.path)
	assert.Equal(t, []string{"a", "b"}, list.DocumentIDs)
}

func TestClient_InfoDocuments(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"documents":[{"id":"a","text":"x","metadata":{}}],"found_count":1,"not_found_count":1,"not_found_ids":["z"]}`)

	res, err := c.InfoDocuments(context.Background(), []string{"a", "z"})

	require.NoError(t, err)
	assert.Equal(t, "/info_documents", rec.path)
	assert.Equal(t, []any{"a", "z"}, rec.body["ids"])
	assert.Equal(t, []string{"z"}, res.NotFoundIDs)
}

func TestClient_RemoveDocuments(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"removed_count":1}`)

	_, err := c.RemoveDocuments(context.Background(), []string{"a"})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/remove_documents", rec.path)
	assert.Equal(t, []any{"a"}, rec.body["document_ids"])
}

func TestClient_AddDocuments(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"successful_count":2}`)

	res, err := c.AddDocuments(context.Background(), []domain.DocumentInput{
		{Text: "one", Metadata: map[string]any{"chunk_index": 1}},
		{Text: "two", Metadata: map[string]any{}},
	})

	require.NoError(t, err)
	assert.Equal(t, "/add_documents", rec.path)
	docs := rec.body["documents"].([]any)
	require.Len(t, docs, 2)
	assert.Equal(t, "one", docs[0].(map[string]any)["text"])
	assert.Equal(t, float64(2), res["successful_count"])
}

func TestClient_Retrieve(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"documents":[{"id":"a","content":"hit","metadata":{},"score":0.91}]}`)

	docs, err := c.Retrieve(context.Background(), domain.RetrieveQuery{Query: "q", Limit: 10, ScoreThreshold: 0.5})

	require.NoError(t, err)
	assert.Equal(t, "/retrieve", rec.path)
	assert.Equal(t, "q", rec.body["query"])
	assert.Equal(t, float64(10), rec.body["limit"])
	assert.Equal(t, 0.5, rec.body["score_threshold"])
	require.Len(t, docs, 1)
	assert.InDelta(t, 0.91, *docs[0].Score, 1e-9)
}

func TestClient_Chunk(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"chunks":["a",{"text":"b"}]}`)
	threshold := 0.7

	chunks, err := c.Chunk(context.Background(), port.ChunkRequest{
		Text: "a b", ModelName: "qwen3-embedding-4b", Method: "semantic", SimilarityThreshold: &threshold,
	})

	require.NoError(t, err)
	assert.Equal(t, "/chunking", rec.path)
	assert.Equal(t, "qwen3-embedding-4b", rec.body["model_name"])
	assert.Equal(t, 0.7, rec.body["similarity_threshold"])
	assert.Len(t, chunks, 2)
}

func TestClient_Chunk_OmitsThreshold(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{}`)

	chunks, err := c.Chunk(context.Background(), port.ChunkRequest{Text: "a", ModelName: "m", Method: "regular"})

	require.NoError(t, err)
	assert.Nil(t, chunks)
	_, present := rec.body["similarity_threshold"]
	assert.False(t, present)
}

func TestClient_ParseFast(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"text":"parsed"}`)

	raw, err := c.ParseFast(context.Background(), domain.DocumentTypeDOCX, []byte("PK"))

	require.NoError(t, err)
	assert.Equal(t, "/parse_docx", rec.path)
	assert.Equal(t, "UEs=", rec.body["data"])
	assert.Equal(t, "fast", rec.body["method"])
	assert.JSONEq(t, `{"text":"parsed"}`, string(raw))
}

func TestClient_AddModel(t *testing.T) {
	c, rec := newServer(t, http.StatusCreated, `{"model_id":"qwen"}`)

	_, err := c.AddModel(context.Background(), domain.AddModelRequest{ModelID: "qwen", ModelType: "llm", MainGPUID: -1})

	require.NoError(t, err)
	assert.Equal(t, "/models", rec.path)
	assert.Equal(t, "qwen", rec.body["model_id"])
	assert.Equal(t, float64(-1), rec.body["main_gpu_id"])
}

func TestClient_RemoveModel_EscapesID(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, ``)

	err := c.RemoveModel(context.Background(), "org/model 7b")

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/models/org%2Fmodel%207b", rec.path)
}

func TestClient_ErrorStatus(t *testing.T) {
	c, _ := newServer(t, http.StatusNotFound, `{"error":{"message":"Engine not found"}}`)

	err := c.RemoveModel(context.Background(), "missing")

	se, ok := remote.AsStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.Equal(t, "Engine not found", se.Message)
	assert.Equal(t, "kolosal", se.Service)
}
