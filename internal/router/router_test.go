package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/handler"
	"kolosaldash/internal/ingest"
	"kolosaldash/internal/router"
	"kolosaldash/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testRouter struct {
	engine    *gin.Engine
	inference *mocks.MockModelManager
	status    *mocks.MockStatusService
	engines   *mocks.MockEngineService
	ingest    *mocks.MockIngestService
}

func newTestRouter() *testRouter {
	tr := &testRouter{
		inference: new(mocks.MockModelManager),
		status:    new(mocks.MockStatusService),
		engines:   new(mocks.MockEngineService),
		ingest:    new(mocks.MockIngestService),
	}
	tr.engine = router.Setup(router.Handlers{
		Health:    handler.NewHealthHandler(tr.inference),
		Status:    handler.NewStatusHandler(tr.status),
		Documents: handler.NewDocumentHandler(new(mocks.MockDocumentService)),
		Retrieve:  handler.NewRetrieveHandler(new(mocks.MockRetrieveService)),
		Engines:   handler.NewEngineHandler(tr.engines),
		Ingest:    handler.NewIngestHandler(tr.ingest, 0),
	}, []string{"http://localhost:3000"})
	return tr
}

func (tr *testRouter) do(method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	tr.engine.ServeHTTP(w, req)
	return w
}

func TestRouter_Healthz(t *testing.T) {
	tr := newTestRouter()

	w := tr.do(http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_Status(t *testing.T) {
	tr := newTestRouter()
	tr.status.On("Dashboard", mock.Anything).Return(&domain.DashboardStatus{LastUpdated: "now"})

	w := tr.do(http.MethodGet, "/api/status")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_EngineIDWithEscapedSlash(t *testing.T) {
	tr := newTestRouter()
	tr.engines.On("RemoveModel", mock.Anything, "org/model-7b").Return(nil)

	w := tr.do(http.MethodDelete, "/api/engines/org%2Fmodel-7b")

	assert.Equal(t, http.StatusOK, w.Code)
	tr.engines.AssertExpectations(t)
}

func TestRouter_RunRoutes(t *testing.T) {
	tr := newTestRouter()
	snap := &ingest.Snapshot{ID: "run-1", State: ingest.StateReviewing}
	tr.ingest.On("GetRun", "run-1").Return(snap, nil)
	tr.ingest.On("BeginEdit", "run-1", "chunk-2").Return(snap, nil)
	tr.ingest.On("CancelEdit", "run-1", "chunk-2").Return(snap, nil)
	tr.ingest.On("DeleteChunk", "run-1", "chunk-2").Return(snap, nil)

	for _, rt := range []struct{ method, path string }{
		{http.MethodGet, "/api/ingest/runs/run-1"},
		{http.MethodPost, "/api/ingest/runs/run-1/chunks/chunk-2/edit"},
		{http.MethodDelete, "/api/ingest/runs/run-1/chunks/chunk-2/edit"},
		{http.MethodDelete, "/api/ingest/runs/run-1/chunks/chunk-2"},
	} {
		w := tr.do(rt.method, rt.path)
		assert.Equal(t, http.StatusOK, w.Code, "%s %s", rt.method, rt.path)
	}
	tr.ingest.AssertExpectations(t)
}

func TestRouter_PanicReturnsEnvelope(t *testing.T) {
	tr := newTestRouter()
	tr.status.On("Dashboard", mock.Anything).Run(func(mock.Arguments) { panic("boom") })

	w := tr.do(http.MethodGet, "/api/status")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
}

func TestRouter_Preflight(t *testing.T) {
	tr := newTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/ingest/runs", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	tr.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_SwaggerDoc(t *testing.T) {
	tr := newTestRouter()

	w := tr.do(http.MethodGet, "/swagger/doc.json")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "/ingest/runs/{runId}/commit"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	tr := newTestRouter()

	w := tr.do(http.MethodGet, "/api/nope")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
