package logs

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func setupRouter(path string) *chi.Mux {
	r := chi.NewRouter()
	New(path).RegisterRoutes(r)
	return r
}

func TestDownloadMissingFile(t *testing.T) {
	r := setupRouter(filepath.Join(t.TempDir(), "absent.log"))

	for _, path := range []string{"/logs", "/logs/raw"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		if resp.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, resp.Code)
		}
	}
}

func TestDownload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "research.log")
	if err := os.WriteFile(path, []byte("session=abc\nQUESTION:\nq\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	r := setupRouter(path)

	req := httptest.NewRequest(http.MethodGet, "/logs", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("unexpected content type: %s", ct)
	}
	if cd := resp.Header().Get("Content-Disposition"); !strings.Contains(cd, "research.log") {
		t.Fatalf("unexpected content disposition: %s", cd)
	}
	if !strings.Contains(resp.Body.String(), "session=abc") {
		t.Fatalf("log content missing: %s", resp.Body)
	}
}

func TestRawEscapesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "research.log")
	if err := os.WriteFile(path, []byte("<script>alert(1)</script>"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	r := setupRouter(path)

	req := httptest.NewRequest(http.MethodGet, "/logs/raw", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type: %s", ct)
	}
	body := resp.Body.String()
	if strings.Contains(body, "<script>") {
		t.Fatal("log content must be escaped")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Fatalf("escaped content missing: %s", body)
	}
	if !strings.Contains(body, "<pre>") {
		t.Fatalf("expected inline pre rendering: %s", body)
	}
}
