package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/service"
	"kolosaldash/mocks"
)

type statusDeps struct {
	inference  *mocks.MockModelManager
	documents  *mocks.MockDocumentStore
	markitdown *mocks.MockHealthChecker
	docling    *mocks.MockHealthChecker
}

func newStatusService() (service.StatusService, statusDeps) {
	deps := statusDeps{
		inference:  new(mocks.MockModelManager),
		documents:  new(mocks.MockDocumentStore),
		markitdown: new(mocks.MockHealthChecker),
		docling:    new(mocks.MockHealthChecker),
	}
	return service.NewStatusService(deps.inference, deps.documents, deps.markitdown, deps.docling), deps
}

func TestStatusService_Dashboard_AllHealthy(t *testing.T) {
	svc, deps := newStatusService()

	inference := &domain.InferenceStatus{Status: "healthy", Engines: []domain.EngineStatus{{EngineID: "qwen", Status: "loaded"}}}
	docs := &domain.DocumentList{CollectionName: "documents", DocumentIDs: []string{"a"}, TotalCount: 1}
	deps.inference.On("Status", mock.Anything).Return(inference, nil)
	deps.documents.On("ListDocuments", mock.Anything).Return(docs, nil)
	deps.markitdown.On("Health", mock.Anything).Return(&domain.ServiceStatus{Status: "healthy", Service: "markitdown"}, nil)
	deps.docling.On("Health", mock.Anything).Return(&domain.ServiceStatus{Status: "ok"}, nil)

	out := svc.Dashboard(context.Background())

	assert.Equal(t, inference, out.InferenceStatus)
	assert.Equal(t, docs, out.DocumentsData)
	assert.Equal(t, "healthy", out.MarkitdownStatus.Status)
	assert.Equal(t, "ok", out.DoclingStatus.Status)
	_, err := time.Parse(time.RFC3339, out.LastUpdated)
	assert.NoError(t, err)
}

func TestStatusService_Dashboard_PartialFailure(t *testing.T) {
	svc, deps := newStatusService()

	deps.inference.On("Status", mock.Anything).Return(nil, errors.New("connection refused"))
	deps.documents.On("ListDocuments", mock.Anything).Return(nil, errors.New("connection refused"))
	deps.markitdown.On("Health", mock.Anything).Return(nil, errors.New("timeout"))
	deps.docling.On("Health", mock.Anything).Return(&domain.ServiceStatus{Status: "ok"}, nil)

	out := svc.Dashboard(context.Background())

	assert.Equal(t, domain.StatusUnavailable, out.InferenceStatus.Status)
	assert.Nil(t, out.DocumentsData)
	assert.Equal(t, &domain.ServiceStatus{Status: domain.StatusUnavailable, Service: "markitdown-api"}, out.MarkitdownStatus)
	assert.Equal(t, "ok", out.DoclingStatus.Status)
}

func TestStatusService_Dashboard_AllDown(t *testing.T) {
	svc, deps := newStatusService()

	deps.inference.On("Status", mock.Anything).Return(nil, errors.New("down"))
	deps.documents.On("ListDocuments", mock.Anything).Return(nil, errors.New("down"))
	deps.markitdown.On("Health", mock.Anything).Return(nil, errors.New("down"))
	deps.docling.On("Health", mock.Anything).Return(nil, errors.New("down"))

	out := svc.Dashboard(context.Background())

	assert.Equal(t, domain.StatusUnavailable, out.InferenceStatus.Status)
	assert.Equal(t, "markitdown-api", out.MarkitdownStatus.Service)
	assert.Equal(t, "docling-api", out.DoclingStatus.Service)
	assert.Equal(t, domain.StatusUnavailable, out.DoclingStatus.Status)
	assert.NotEmpty(t, out.LastUpdated)
}
