package video

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/vidvault/vidvault/backend/internal/errors"
	"github.com/vidvault/vidvault/backend/internal/hosting"
	"github.com/vidvault/vidvault/backend/internal/platform"
	"github.com/vidvault/vidvault/backend/internal/storage"
	"golang.org/x/sync/errgroup"
)

// hostingTimeLayout is the timestamp format the hosting API reports
const hostingTimeLayout = "2006-01-02 15:04:05"

// Aggregator reconciles videos living in up to three backing stores
// into one deduplicated, UI-ready collection, and routes mutations to
// the adapter owning each item. A nil adapter is simply inactive; which
// stores are wired in is a deployment choice.
type Aggregator struct {
	links      LinkStore
	objects    storage.ObjectStore
	hosted     HostingStore
	classifier *platform.Classifier
	logger     Logger
}

// NewAggregator creates a new aggregator over the given adapters.
// Adapters may be nil to deactivate a source.
func NewAggregator(links LinkStore, objects storage.ObjectStore, hosted HostingStore, classifier *platform.Classifier, logger Logger) *Aggregator {
	return &Aggregator{
		links:      links,
		objects:    objects,
		hosted:     hosted,
		classifier: classifier,
		logger:     logger,
	}
}

// CreatePayload carries the origin-specific input for Create
type CreatePayload struct {
	// URL registers an external link (link origin) or a remote ingestion
	// target (hosting origin).
	URL string

	// File upload fields (storage origin, or hosting origin when URL is
	// empty).
	Reader      io.Reader
	Filename    string
	Size        int64
	ContentType string
	Progress    storage.ProgressFunc
}

// ListAll lists every active adapter concurrently and merges the
// results. A single adapter failure degrades to an empty contribution
// and is logged; only when every active adapter fails does the call
// fail, with an AggregateError. Order is deterministic: link items
// first, then storage, then hosting; newest first within each origin.
func (a *Aggregator) ListAll(ctx context.Context) ([]VideoItem, error) {
	var (
		linkItems, storageItems, hostedItems []VideoItem
		linkErr, storageErr, hostedErr       error
	)

	g, gctx := errgroup.WithContext(ctx)
	active := 0

	if a.links != nil {
		active++
		g.Go(func() error {
			links, err := a.links.List(gctx)
			if err != nil {
				linkErr = a.logger.LogError(err, "link adapter failed during aggregate list")
				return nil
			}
			linkItems = a.linkItems(links)
			return nil
		})
	}

	if a.objects != nil {
		active++
		g.Go(func() error {
			objects, err := a.objects.List(gctx)
			if err != nil {
				storageErr = a.logger.LogError(err, "storage adapter failed during aggregate list")
				return nil
			}
			storageItems = a.storageItems(objects)
			return nil
		})
	}

	if a.hosted != nil {
		active++
		g.Go(func() error {
			env, err := a.hosted.ListFiles(gctx)
			if err != nil {
				hostedErr = a.logger.LogError(err, "hosting adapter failed during aggregate list")
				return nil
			}
			list, err := env.FileList()
			if err != nil {
				hostedErr = a.logger.LogError(err, "hosting adapter returned an undecodable file list")
				return nil
			}
			hostedItems = a.hostedItems(list.Files)
			return nil
		})
	}

	// Adapter failures are captured per slot, never returned from the
	// group, so one bad store cannot short-circuit the others.
	_ = g.Wait()

	failures := make([]error, 0, 3)
	for _, err := range []error{linkErr, storageErr, hostedErr} {
		if err != nil {
			failures = append(failures, err)
		}
	}
	if active > 0 && len(failures) == active {
		return nil, apperrors.NewAggregateError(failures)
	}

	items := make([]VideoItem, 0, len(linkItems)+len(storageItems)+len(hostedItems))
	items = append(items, linkItems...)
	items = append(items, storageItems...)
	items = append(items, hostedItems...)
	return items, nil
}

// Create routes a create request to the one adapter matching origin
func (a *Aggregator) Create(ctx context.Context, origin Origin, payload CreatePayload) (*VideoItem, error) {
	switch origin {
	case OriginLink:
		if a.links == nil {
			return nil, apperrors.NewValidationError("origin", "link source is not active")
		}
		link, err := a.links.Create(ctx, payload.URL)
		if err != nil {
			return nil, err
		}
		item := a.linkItem(*link)
		return &item, nil

	case OriginStorage:
		if a.objects == nil {
			return nil, apperrors.NewValidationError("origin", "storage source is not active")
		}
		obj, err := a.objects.Upload(ctx, payload.Reader, payload.Filename, payload.Size, payload.ContentType, payload.Progress)
		if err != nil {
			return nil, err
		}
		item := a.storageItem(*obj)
		return &item, nil

	case OriginHosting:
		if a.hosted == nil {
			return nil, apperrors.NewValidationError("origin", "hosting source is not active")
		}
		if _, err := a.hosted.IngestRemoteURL(ctx, payload.URL); err != nil {
			return nil, err
		}
		return &VideoItem{Origin: OriginHosting, URL: payload.URL, PublicURL: payload.URL}, nil
	}

	return nil, apperrors.NewValidationError("origin", "unknown origin")
}

// Delete routes a delete request to the one adapter matching origin.
// Storage deletes key on the object name, passed as extra, because the
// bucket keys deletion by name rather than id.
func (a *Aggregator) Delete(ctx context.Context, origin Origin, id, extra string) error {
	switch origin {
	case OriginLink:
		if a.links == nil {
			return apperrors.NewValidationError("origin", "link source is not active")
		}
		linkID, err := uuid.Parse(id)
		if err != nil {
			return apperrors.NewValidationError("id", "invalid link id")
		}
		return a.links.Delete(ctx, linkID)

	case OriginStorage:
		if a.objects == nil {
			return apperrors.NewValidationError("origin", "storage source is not active")
		}
		if extra == "" {
			return apperrors.NewValidationError("fileName", apperrors.ErrMsgFileNameMissing)
		}
		return a.objects.Delete(ctx, extra)

	case OriginHosting:
		if a.hosted == nil {
			return apperrors.NewValidationError("origin", "hosting source is not active")
		}
		_, err := a.hosted.DeleteFile(ctx, id)
		return err
	}

	return apperrors.NewValidationError("origin", "unknown origin")
}

// linkItems converts link rows, enriched with classifier display fields
func (a *Aggregator) linkItems(links []VideoLink) []VideoItem {
	items := make([]VideoItem, 0, len(links))
	for _, link := range links {
		items = append(items, a.linkItem(link))
	}
	return items
}

func (a *Aggregator) linkItem(link VideoLink) VideoItem {
	cls := a.classifier.Classify(link.URL)
	return VideoItem{
		ID:           link.ID.String(),
		Name:         cls.Title,
		PublicURL:    link.URL,
		CreatedAt:    link.CreatedAt,
		Origin:       OriginLink,
		URL:          link.URL,
		Platform:     cls.Platform,
		EmbedURL:     cls.EmbedURL,
		IsEmbeddable: cls.Embeddable,
		Metadata:     &Metadata{MimeType: "video/mp4"},
	}
}

func (a *Aggregator) storageItems(objects []storage.Object) []VideoItem {
	items := make([]VideoItem, 0, len(objects))
	for _, obj := range objects {
		items = append(items, a.storageItem(obj))
	}
	return items
}

func (a *Aggregator) storageItem(obj storage.Object) VideoItem {
	return VideoItem{
		ID:        obj.Name,
		Name:      obj.Name,
		PublicURL: obj.PublicURL,
		CreatedAt: obj.CreatedAt,
		Origin:    OriginStorage,
		FileName:  obj.Name,
		Metadata: &Metadata{
			MimeType: obj.ContentType,
			Size:     obj.Size,
		},
	}
}

func (a *Aggregator) hostedItems(files []hosting.File) []VideoItem {
	items := make([]VideoItem, 0, len(files))
	for _, f := range files {
		name := f.Title
		if name == "" {
			name = f.FileCode
		}
		createdAt, _ := time.Parse(hostingTimeLayout, f.Uploaded)
		items = append(items, VideoItem{
			ID:        f.FileCode,
			Name:      name,
			PublicURL: f.Link,
			CreatedAt: createdAt,
			Origin:    OriginHosting,
			Thumbnail: f.Thumbnail,
			Length:    f.Length,
			Views:     f.Views,
			CanPlay:   f.CanPlay,
			Public:    f.Public,
		})
	}
	return items
}
