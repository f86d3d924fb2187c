package cli

import (
	"bytes"
	"testing"

	"kolosaldash/internal/domain"
	"kolosaldash/mocks"
)

type testServices struct {
	status    *mocks.MockStatusService
	documents *mocks.MockDocumentService
	retrieve  *mocks.MockRetrieveService
	engines   *mocks.MockEngineService
	ingest    *mocks.MockIngestService
}

// setupTestServices installs mocks and resets flag values left over from earlier runs.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()
	ts := &testServices{
		status:    new(mocks.MockStatusService),
		documents: new(mocks.MockDocumentService),
		retrieve:  new(mocks.MockRetrieveService),
		engines:   new(mocks.MockEngineService),
		ingest:    new(mocks.MockIngestService),
	}
	SetServices(&Services{
		Status:    ts.status,
		Documents: ts.documents,
		Retrieve:  ts.retrieve,
		Engines:   ts.engines,
		Ingest:    ts.ingest,
	})

	documentsPage = 1
	retrieveLimit = 10
	retrieveThreshold = 0.5
	ingestType = ""
	ingestParser = ""
	ingestChunking = string(domain.ChunkingRegular)
	ingestThreshold = domain.DefaultSimilarityThreshold
	ingestDryRun = false
	ingestWorkers = 2
	statusOutput = "text"
	exportFormat = "csv"
	exportOut = ""

	t.Cleanup(func() { SetServices(nil) })
	return ts
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
