package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/service"
	"kolosaldash/mocks"
)

func documentIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("doc-%02d", i+1)
	}
	return ids
}

func TestDocumentService_Page_SlicesIDs(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	svc := service.NewDocumentService(store, 10)

	ids := documentIDs(23)
	store.On("ListDocuments", mock.Anything).Return(&domain.DocumentList{CollectionName: "documents", DocumentIDs: ids, TotalCount: 23}, nil)
	store.On("InfoDocuments", mock.Anything, ids[10:20]).Return(&domain.DocumentInfoResult{
		Documents: []domain.DocumentInfo{{ID: "doc-11", Text: "eleven"}},
	}, nil)

	page, err := svc.Page(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 23, page.TotalCount)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, "documents", page.CollectionName)
	assert.Len(t, page.Documents, 1)
	store.AssertExpectations(t)
}

func TestDocumentService_Page_LastPartialPage(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	svc := service.NewDocumentService(store, 10)

	ids := documentIDs(23)
	store.On("ListDocuments", mock.Anything).Return(&domain.DocumentList{DocumentIDs: ids}, nil)
	store.On("InfoDocuments", mock.Anything, ids[20:23]).Return(&domain.DocumentInfoResult{}, nil)

	page, err := svc.Page(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.NotNil(t, page.Documents)
	store.AssertExpectations(t)
}

func TestDocumentService_Page_OutOfRangeResetsToFirst(t *testing.T) {
	for _, requested := range []int{0, -1, 4, 99} {
		store := new(mocks.MockDocumentStore)
		svc := service.NewDocumentService(store, 10)

		ids := documentIDs(23)
		store.On("ListDocuments", mock.Anything).Return(&domain.DocumentList{DocumentIDs: ids}, nil)
		store.On("InfoDocuments", mock.Anything, ids[0:10]).Return(&domain.DocumentInfoResult{}, nil)

		page, err := svc.Page(context.Background(), requested)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page, "requested page %d", requested)
		store.AssertExpectations(t)
	}
}

func TestDocumentService_Page_EmptyCollection(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	svc := service.NewDocumentService(store, 0)

	store.On("ListDocuments", mock.Anything).Return(&domain.DocumentList{CollectionName: "documents"}, nil)

	page, err := svc.Page(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, service.DefaultPageSize, page.PageSize)
	assert.Empty(t, page.Documents)
	store.AssertNotCalled(t, "InfoDocuments", mock.Anything, mock.Anything)
}

func TestDocumentService_List_RemoteError(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	svc := service.NewDocumentService(store, 10)
	store.On("ListDocuments", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrRemoteRequest)
}

func TestDocumentService_InfoAndDelete_RequireIDs(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	svc := service.NewDocumentService(store, 10)

	_, err := svc.Info(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.Delete(context.Background(), []string{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	store.AssertNotCalled(t, "InfoDocuments", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "RemoveDocuments", mock.Anything, mock.Anything)
}

func TestDocumentService_Delete(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	svc := service.NewDocumentService(store, 10)
	store.On("RemoveDocuments", mock.Anything, []string{"a", "b"}).Return(map[string]any{"removed_count": float64(2)}, nil)

	res, err := svc.Delete(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, float64(2), res["removed_count"])
}

func TestDocumentService_Export_Batches(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	svc := service.NewDocumentService(store, 10)

	ids := documentIDs(250)
	store.On("ListDocuments", mock.Anything).Return(&domain.DocumentList{CollectionName: "documents", DocumentIDs: ids, TotalCount: 250}, nil)
	store.On("InfoDocuments", mock.Anything, ids[:200]).Return(&domain.DocumentInfoResult{
		Documents: []domain.DocumentInfo{{ID: "doc-001"}, {ID: "doc-002"}},
	}, nil)
	store.On("InfoDocuments", mock.Anything, ids[200:]).Return(&domain.DocumentInfoResult{
		Documents:   []domain.DocumentInfo{{ID: "doc-201"}},
		NotFoundIDs: []string{"doc-250"},
	}, nil)

	export, err := svc.Export(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "documents", export.CollectionName)
	assert.Len(t, export.Documents, 3)
	assert.Equal(t, []string{"doc-250"}, export.NotFoundIDs)
	store.AssertExpectations(t)
}

func TestDocumentService_Export_EmptyCollection(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	svc := service.NewDocumentService(store, 10)
	store.On("ListDocuments", mock.Anything).Return(&domain.DocumentList{CollectionName: "documents"}, nil)

	export, err := svc.Export(context.Background())

	require.NoError(t, err)
	assert.Empty(t, export.Documents)
	store.AssertNotCalled(t, "InfoDocuments", mock.Anything, mock.Anything)
}
