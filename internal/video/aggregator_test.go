package video

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	apperrors "github.com/vidvault/vidvault/backend/internal/errors"
	"github.com/vidvault/vidvault/backend/internal/hosting"
	"github.com/vidvault/vidvault/backend/internal/platform"
	"github.com/vidvault/vidvault/backend/internal/storage"
	"github.com/vidvault/vidvault/backend/testhelper"
)

type MockLinkStore struct {
	mock.Mock
}

func (m *MockLinkStore) List(ctx context.Context) ([]VideoLink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]VideoLink), args.Error(1)
}

func (m *MockLinkStore) Create(ctx context.Context, url string) (*VideoLink, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*VideoLink), args.Error(1)
}

func (m *MockLinkStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) List(ctx context.Context) ([]storage.Object, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Object), args.Error(1)
}

func (m *MockObjectStore) Upload(ctx context.Context, reader io.Reader, filename string, size int64, contentType string, progress storage.ProgressFunc) (*storage.Object, error) {
	args := m.Called(ctx, reader, filename, size, contentType, progress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Object), args.Error(1)
}

func (m *MockObjectStore) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockObjectStore) PublicURL(name string) string {
	args := m.Called(name)
	return args.String(0)
}

type MockHostingStore struct {
	mock.Mock
}

func (m *MockHostingStore) ListFiles(ctx context.Context) (*hosting.Envelope, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hosting.Envelope), args.Error(1)
}

func (m *MockHostingStore) IngestRemoteURL(ctx context.Context, url string) (*hosting.Envelope, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hosting.Envelope), args.Error(1)
}

func (m *MockHostingStore) DeleteFile(ctx context.Context, fileCode string) (*hosting.Envelope, error) {
	args := m.Called(ctx, fileCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hosting.Envelope), args.Error(1)
}

func fileListEnvelope(t *testing.T, files []hosting.File) *hosting.Envelope {
	t.Helper()
	result, err := json.Marshal(hosting.FileListResult{Files: files, Results: len(files)})
	assert.NoError(t, err)
	return &hosting.Envelope{Status: 200, Msg: "OK", Result: result}
}

func newTestAggregator(links LinkStore, objects storage.ObjectStore, hosted HostingStore) *Aggregator {
	return NewAggregator(links, objects, hosted, platform.NewClassifier("localhost"), testhelper.NewTestLogger())
}

func TestListAllMergesInOrder(t *testing.T) {
	links := new(MockLinkStore)
	objects := new(MockObjectStore)
	hosted := new(MockHostingStore)

	linkID := uuid.New()
	links.On("List", mock.Anything).Return([]VideoLink{
		{ID: linkID, URL: "https://vimeo.com/12345", CreatedAt: time.Now()},
	}, nil)
	objects.On("List", mock.Anything).Return([]storage.Object{
		{Name: "1700000000000-clip.mp4", Size: 2048, ContentType: "video/mp4", PublicURL: "https://cdn.example.com/videos/1700000000000-clip.mp4"},
	}, nil)
	hosted.On("ListFiles", mock.Anything).Return(fileListEnvelope(t, []hosting.File{
		{FileCode: "abc123", Title: "Hosted clip", Link: "https://host.example/abc123", Uploaded: "2024-05-01 10:00:00"},
	}), nil)

	agg := newTestAggregator(links, objects, hosted)
	items, err := agg.ListAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, items, 3)

	assert.Equal(t, OriginLink, items[0].Origin)
	assert.Equal(t, linkID.String(), items[0].ID)
	assert.Equal(t, platform.Vimeo, items[0].Platform)
	assert.Equal(t, "https://player.vimeo.com/video/12345", items[0].EmbedURL)
	assert.True(t, items[0].IsEmbeddable)

	assert.Equal(t, OriginStorage, items[1].Origin)
	assert.Equal(t, "1700000000000-clip.mp4", items[1].FileName)
	assert.Equal(t, "video/mp4", items[1].Metadata.MimeType)

	assert.Equal(t, OriginHosting, items[2].Origin)
	assert.Equal(t, "abc123", items[2].ID)
	assert.Equal(t, "Hosted clip", items[2].Name)
}

func TestListAllToleratesSingleAdapterFailure(t *testing.T) {
	links := new(MockLinkStore)
	objects := new(MockObjectStore)

	links.On("List", mock.Anything).Return(nil, apperrors.NewStoreError("connection refused", nil))
	objects.On("List", mock.Anything).Return([]storage.Object{
		{Name: "surviving.mp4", ContentType: "video/mp4"},
	}, nil)

	agg := newTestAggregator(links, objects, nil)
	items, err := agg.ListAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, OriginStorage, items[0].Origin)
	assert.Equal(t, "surviving.mp4", items[0].Name)
}

func TestListAllAllAdaptersFailing(t *testing.T) {
	links := new(MockLinkStore)
	objects := new(MockObjectStore)
	hosted := new(MockHostingStore)

	links.On("List", mock.Anything).Return(nil, apperrors.NewStoreError("db down", nil))
	objects.On("List", mock.Anything).Return(nil, apperrors.NewStoreError("bucket unreachable", nil))
	hosted.On("ListFiles", mock.Anything).Return(nil, apperrors.NewUpstreamError("gateway timeout", 0, nil))

	agg := newTestAggregator(links, objects, hosted)
	items, err := agg.ListAll(context.Background())

	assert.Nil(t, items)
	var aggErr *apperrors.AggregateError
	assert.ErrorAs(t, err, &aggErr)
	assert.Len(t, aggErr.Errs, 3)
}

func TestListAllWithOnlyLinksActive(t *testing.T) {
	links := new(MockLinkStore)
	links.On("List", mock.Anything).Return([]VideoLink{
		{ID: uuid.New(), URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
	}, nil)

	agg := newTestAggregator(links, nil, nil)
	items, err := agg.ListAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, platform.YouTube, items[0].Platform)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", items[0].EmbedURL)
}

func TestListAllUndecodableHostingResultCountsAsFailure(t *testing.T) {
	hosted := new(MockHostingStore)
	hosted.On("ListFiles", mock.Anything).Return(&hosting.Envelope{
		Status: 200,
		Result: json.RawMessage(`"not a file list"`),
	}, nil)

	agg := newTestAggregator(nil, nil, hosted)
	_, err := agg.ListAll(context.Background())

	var aggErr *apperrors.AggregateError
	assert.ErrorAs(t, err, &aggErr)
}

func TestCreateRoutesLinkOriginToLinkStoreOnly(t *testing.T) {
	links := new(MockLinkStore)
	objects := new(MockObjectStore)
	hosted := new(MockHostingStore)

	links.On("Create", mock.Anything, "https://vimeo.com/9876").Return(&VideoLink{
		ID:  uuid.New(),
		URL: "https://vimeo.com/9876",
	}, nil)

	agg := newTestAggregator(links, objects, hosted)
	item, err := agg.Create(context.Background(), OriginLink, CreatePayload{URL: "https://vimeo.com/9876"})

	assert.NoError(t, err)
	assert.Equal(t, OriginLink, item.Origin)
	assert.Equal(t, "https://vimeo.com/9876", item.PublicURL)
	links.AssertExpectations(t)
	objects.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	hosted.AssertNotCalled(t, "IngestRemoteURL", mock.Anything, mock.Anything)
}

func TestCreateHostingOriginIngestsRemoteURL(t *testing.T) {
	hosted := new(MockHostingStore)
	hosted.On("IngestRemoteURL", mock.Anything, "https://example.com/remote.mp4").Return(&hosting.Envelope{Status: 200}, nil)

	agg := newTestAggregator(nil, nil, hosted)
	item, err := agg.Create(context.Background(), OriginHosting, CreatePayload{URL: "https://example.com/remote.mp4"})

	assert.NoError(t, err)
	assert.Equal(t, OriginHosting, item.Origin)
	hosted.AssertExpectations(t)
}

func TestCreateOnInactiveOrigin(t *testing.T) {
	agg := newTestAggregator(nil, nil, nil)
	_, err := agg.Create(context.Background(), OriginLink, CreatePayload{URL: "https://vimeo.com/1"})

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDeleteLinkRejectsMalformedID(t *testing.T) {
	links := new(MockLinkStore)

	agg := newTestAggregator(links, nil, nil)
	err := agg.Delete(context.Background(), OriginLink, "not-a-uuid", "")

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "id", verr.Field)
	links.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteStorageRequiresFileName(t *testing.T) {
	objects := new(MockObjectStore)

	agg := newTestAggregator(nil, objects, nil)
	err := agg.Delete(context.Background(), OriginStorage, "some-id", "")

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "fileName", verr.Field)
	objects.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteRoutesByOrigin(t *testing.T) {
	links := new(MockLinkStore)
	objects := new(MockObjectStore)
	hosted := new(MockHostingStore)

	linkID := uuid.New()
	links.On("Delete", mock.Anything, linkID).Return(nil)
	objects.On("Delete", mock.Anything, "old-clip.mp4").Return(nil)
	hosted.On("DeleteFile", mock.Anything, "abc123").Return(&hosting.Envelope{Status: 200}, nil)

	agg := newTestAggregator(links, objects, hosted)

	assert.NoError(t, agg.Delete(context.Background(), OriginLink, linkID.String(), ""))
	assert.NoError(t, agg.Delete(context.Background(), OriginStorage, "ignored", "old-clip.mp4"))
	assert.NoError(t, agg.Delete(context.Background(), OriginHosting, "abc123", ""))

	links.AssertExpectations(t)
	objects.AssertExpectations(t)
	hosted.AssertExpectations(t)
}

// memoryLinkStore backs the round-trip test with real create/list/delete
// semantics instead of canned mock returns.
type memoryLinkStore struct {
	rows []VideoLink
}

func (s *memoryLinkStore) List(ctx context.Context) ([]VideoLink, error) {
	out := make([]VideoLink, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *memoryLinkStore) Create(ctx context.Context, url string) (*VideoLink, error) {
	if url == "" {
		return nil, apperrors.NewValidationError("url", apperrors.ErrMsgURLMissing)
	}
	row := VideoLink{ID: uuid.New(), URL: url, CreatedAt: time.Now()}
	s.rows = append([]VideoLink{row}, s.rows...)
	return &row, nil
}

func (s *memoryLinkStore) Delete(ctx context.Context, id uuid.UUID) error {
	for i, row := range s.rows {
		if row.ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("video link", id.String())
}

func TestLinkRoundTrip(t *testing.T) {
	store := &memoryLinkStore{}
	agg := newTestAggregator(store, nil, nil)

	created, err := agg.Create(context.Background(), OriginLink, CreatePayload{URL: "https://vimeo.com/12345"})
	assert.NoError(t, err)

	items, err := agg.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, OriginLink, items[0].Origin)
	assert.Equal(t, "https://vimeo.com/12345", items[0].PublicURL)
	assert.Contains(t, items[0].Name, "12345")
	assert.Equal(t, created.ID, items[0].ID)

	assert.NoError(t, agg.Delete(context.Background(), OriginLink, created.ID, ""))

	items, err = agg.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, items)
}
