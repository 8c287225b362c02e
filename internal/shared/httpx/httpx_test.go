package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"social-platform/internal/shared/jwt"
)

func TestWrap_BusinessErrorMapsTo400(t *testing.T) {
	h := Wrap(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("username already exists")
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/signup", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "username already exists" {
		t.Fatalf("unexpected error payload: %v", body)
	}
}

func TestWrap_UnauthorizedMapsTo401(t *testing.T) {
	h := Wrap(func(w http.ResponseWriter, r *http.Request) error {
		return ErrUnauthorized
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingBearer(t *testing.T) {
	called := false
	h := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/posts", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if called {
		t.Fatalf("next handler ran without credentials")
	}
}

func TestAuthMiddleware_BadToken(t *testing.T) {
	h := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	req.Header.Set("Authorization", "Bearer junk")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tok, err := jwt.Make(7, "user")
	if err != nil {
		t.Fatalf("make token: %v", err)
	}
	var gotUID uint64
	var gotRole string
	h := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUID, _ = UserFromCtx(r)
		gotRole = RoleFromCtx(r)
	}))
	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUID != 7 || gotRole != "user" {
		t.Fatalf("context claims: uid=%d role=%q", gotUID, gotRole)
	}
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/posts?limit=5&bad=x", nil)
	if got := QueryInt(req, "limit", 50); got != 5 {
		t.Fatalf("limit: got %d", got)
	}
	if got := QueryInt(req, "offset", 10); got != 10 {
		t.Fatalf("offset default: got %d", got)
	}
	if got := QueryInt(req, "bad", 3); got != 3 {
		t.Fatalf("bad value default: got %d", got)
	}
}
