package todo

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/taskhive/taskhive/internal/auth"
	_ "github.com/taskhive/taskhive/testing"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, NewService(newMemoryRepo()))
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func doAs(t *testing.T, handler http.Handler, user *auth.User, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if user != nil {
		req = req.WithContext(auth.ContextWithUser(context.Background(), user))
	}
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	return res
}

func TestListReturnsEmptyArrayNotNull(t *testing.T) {
	handler := newTestHandler(t)
	user := &auth.User{ID: 1, Email: "a@x.com"}

	res := doAs(t, handler, user, http.MethodGet, "/", "")
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if strings.TrimSpace(res.Body.String()) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", res.Body.String())
	}
}

func TestCreateAndDeleteFlow(t *testing.T) {
	handler := newTestHandler(t)
	user := &auth.User{ID: 1, Email: "a@x.com"}

	res := doAs(t, handler, user, http.MethodPost, "/", `{"task":"buy milk"}`)
	if res.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", res.Code)
	}
	if !strings.Contains(res.Body.String(), `"task":"buy milk"`) {
		t.Fatalf("create: unexpected body %q", res.Body.String())
	}

	res = doAs(t, handler, user, http.MethodDelete, "/1", "")
	if res.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", res.Code)
	}
	if !strings.Contains(res.Body.String(), `"ok":true`) {
		t.Fatalf("delete: expected ack, got %q", res.Body.String())
	}

	res = doAs(t, handler, user, http.MethodGet, "/", "")
	if strings.TrimSpace(res.Body.String()) != "[]" {
		t.Fatalf("expected empty list after delete, got %q", res.Body.String())
	}
}

func TestCreateEmptyTaskIsRejected(t *testing.T) {
	handler := newTestHandler(t)
	user := &auth.User{ID: 1, Email: "a@x.com"}

	res := doAs(t, handler, user, http.MethodPost, "/", `{"task":"   "}`)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestDeleteUnknownOrForeignIDIsNotFound(t *testing.T) {
	handler := newTestHandler(t)
	alice := &auth.User{ID: 1, Email: "a@x.com"}
	bob := &auth.User{ID: 2, Email: "b@x.com"}

	res := doAs(t, handler, alice, http.MethodPost, "/", `{"task":"secret"}`)
	if res.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", res.Code)
	}

	if res := doAs(t, handler, bob, http.MethodDelete, "/1", ""); res.Code != http.StatusNotFound {
		t.Fatalf("foreign delete: expected 404, got %d", res.Code)
	}
	if res := doAs(t, handler, bob, http.MethodDelete, "/999", ""); res.Code != http.StatusNotFound {
		t.Fatalf("missing delete: expected 404, got %d", res.Code)
	}
	if res := doAs(t, handler, bob, http.MethodDelete, "/not-a-number", ""); res.Code != http.StatusNotFound {
		t.Fatalf("garbage id: expected 404, got %d", res.Code)
	}

	// Alice still sees her todo.
	res = doAs(t, handler, alice, http.MethodGet, "/", "")
	if !strings.Contains(res.Body.String(), `"secret"`) {
		t.Fatalf("expected alice's todo intact, got %q", res.Body.String())
	}
}

func TestMissingIdentityIsUnauthorized(t *testing.T) {
	handler := newTestHandler(t)

	if res := doAs(t, handler, nil, http.MethodGet, "/", ""); res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.Code)
	}
}
