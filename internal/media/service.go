package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrImageFetch = errors.New("could not fetch image")

// maxImageBytes caps how much of a remote image we are willing to ingest.
const maxImageBytes = 10 << 20

// ObjectStore is the slice of the s3 storage the media service needs.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, data []byte) error
	PublicURL(key string) string
}

type Service interface {
	// UploadFromURL fetches the image at sourceURL and re-stores it under a
	// fresh object key, returning the stored object's public URL.
	UploadFromURL(ctx context.Context, sourceURL string) (string, error)
}

type service struct {
	store  ObjectStore
	client *http.Client
}

func NewService(store ObjectStore) Service {
	return &service{
		store:  store,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *service) UploadFromURL(ctx context.Context, sourceURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageFetch, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageFetch, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: source returned %d", ErrImageFetch, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageFetch, err)
	}
	if len(data) == 0 || len(data) > maxImageBytes {
		return "", fmt.Errorf("%w: bad image size", ErrImageFetch)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := uuid.NewString() + extensionFor(sourceURL, contentType)
	if err := s.store.Put(ctx, key, contentType, data); err != nil {
		return "", fmt.Errorf("%w: store: %v", ErrImageFetch, err)
	}
	return s.store.PublicURL(key), nil
}

func extensionFor(sourceURL, contentType string) string {
	if ext := path.Ext(strings.SplitN(path.Base(sourceURL), "?", 2)[0]); ext != "" && len(ext) <= 5 {
		return ext
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
