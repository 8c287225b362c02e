package media

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type fakeStore struct {
	putKey  string
	putType string
	putData []byte
	putErr  error
}

func (f *fakeStore) Put(_ context.Context, key, contentType string, data []byte) error {
	f.putKey = key
	f.putType = contentType
	f.putData = data
	return f.putErr
}

func (f *fakeStore) PublicURL(key string) string {
	return "http://cdn.local/images/" + key
}

func TestUploadFromURL_StoresAndReturnsPublicURL(t *testing.T) {
	src := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer src.Close()

	store := &fakeStore{}
	svc := NewService(store)

	url, err := svc.UploadFromURL(context.Background(), src.URL+"/cat.png")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if store.putKey == "" || !strings.HasSuffix(store.putKey, ".png") {
		t.Fatalf("stored key should be uuid + .png, got %q", store.putKey)
	}
	if string(store.putData) != "png-bytes" || store.putType != "image/png" {
		t.Fatalf("stored wrong object: type=%q data=%q", store.putType, store.putData)
	}
	if url != store.PublicURL(store.putKey) {
		t.Fatalf("returned url %q does not match stored object", url)
	}
}

func TestUploadFromURL_SourceError(t *testing.T) {
	src := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer src.Close()

	svc := NewService(&fakeStore{})
	if _, err := svc.UploadFromURL(context.Background(), src.URL+"/cat.png"); !errors.Is(err, ErrImageFetch) {
		t.Fatalf("expected ErrImageFetch, got %v", err)
	}
}

func TestUploadFromURL_UnreachableSource(t *testing.T) {
	svc := NewService(&fakeStore{})
	if _, err := svc.UploadFromURL(context.Background(), "http://127.0.0.1:1/nope.png"); !errors.Is(err, ErrImageFetch) {
		t.Fatalf("expected ErrImageFetch, got %v", err)
	}
}

func TestUploadFromURL_StoreFailure(t *testing.T) {
	src := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("data"))
	}))
	defer src.Close()

	svc := NewService(&fakeStore{putErr: errors.New("bucket down")})
	if _, err := svc.UploadFromURL(context.Background(), src.URL+"/cat.png"); !errors.Is(err, ErrImageFetch) {
		t.Fatalf("expected ErrImageFetch, got %v", err)
	}
}

func TestUploadFromURL_EmptyBody(t *testing.T) {
	src := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer src.Close()

	svc := NewService(&fakeStore{})
	if _, err := svc.UploadFromURL(context.Background(), src.URL+"/cat.png"); !errors.Is(err, ErrImageFetch) {
		t.Fatalf("expected ErrImageFetch for empty body, got %v", err)
	}
}
