package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"social-platform/internal/shared/httpx"
	"social-platform/internal/testutil"
)

func newTestMux(t *testing.T, name string) *http.ServeMux {
	t.Helper()
	store := testutil.OpenTestStore(t, name, &User{})
	h := NewHandler(NewService(NewRepository(store)))

	mux := http.NewServeMux()
	mux.Handle("POST /signup", httpx.Wrap(h.Signup))
	mux.Handle("POST /login", httpx.Wrap(h.Login))
	mux.Handle("GET /me", httpx.AuthMiddleware(httpx.Wrap(h.Me)))
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, token, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	var out map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode %s %s response: %v", method, path, err)
		}
	}
	return rec.Code, out
}

func TestSignupLoginScenario(t *testing.T) {
	mux := newTestMux(t, "user_handler_scenario")

	code, _ := doJSON(t, mux, http.MethodPost, "/signup", "", `{"username":"alice","password":"pw1234"}`)
	if code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d", code)
	}

	code, out := doJSON(t, mux, http.MethodPost, "/signup", "", `{"username":"alice","password":"pw5678"}`)
	if code != http.StatusBadRequest {
		t.Fatalf("duplicate signup: expected 400, got %d", code)
	}
	if out["error"] != "username already exists" {
		t.Fatalf("duplicate signup error: %v", out)
	}

	code, out = doJSON(t, mux, http.MethodPost, "/login", "", `{"username":"alice","password":"pw1234"}`)
	if code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", code)
	}
	if out["message"] != "Login successful" || out["username"] != "alice" {
		t.Fatalf("login payload: %v", out)
	}
	token, _ := out["access_token"].(string)
	if token == "" {
		t.Fatalf("login did not return a token")
	}

	code, out = doJSON(t, mux, http.MethodPost, "/login", "", `{"username":"alice","password":"wrong"}`)
	if code != http.StatusBadRequest || out["error"] != "wrong credentials" {
		t.Fatalf("bad password: code=%d body=%v", code, out)
	}

	code, out = doJSON(t, mux, http.MethodPost, "/login", "", `{"username":"nobody","password":"pw"}`)
	if code != http.StatusBadRequest || out["error"] != "user not found" {
		t.Fatalf("unknown user: code=%d body=%v", code, out)
	}

	// token identifies alice on /me
	code, out = doJSON(t, mux, http.MethodGet, "/me", token, "")
	if code != http.StatusOK || out["username"] != "alice" {
		t.Fatalf("me: code=%d body=%v", code, out)
	}

	// no token, no identity
	code, _ = doJSON(t, mux, http.MethodGet, "/me", "", "")
	if code != http.StatusUnauthorized {
		t.Fatalf("me without token: expected 401, got %d", code)
	}
}

func TestSignup_RejectsInvalidPayload(t *testing.T) {
	mux := newTestMux(t, "user_handler_invalid")

	code, _ := doJSON(t, mux, http.MethodPost, "/signup", "", `{"username":"ab","password":"x"}`)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload, got %d", code)
	}
}
