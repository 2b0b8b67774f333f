package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"showfolio/internal/config"
	"showfolio/internal/db"
	"showfolio/internal/events"
)

const testDoc = `{
	"id": "web-api",
	"title": "Web API",
	"content": {
		"sections": [
			{"id": "overview", "title": "Overview", "content": [
				{"type": "paragraph", "text": "The API speaks JSON."}
			]}
		]
	}
}`

func newTestServer(t *testing.T) *Server {
	t.Helper()

	contentDir := t.TempDir()
	index := `[{"id": "web-api", "title": "Web API", "description": "HTTP reference"}]`
	if err := os.WriteFile(filepath.Join(contentDir, "index.json"), []byte(index), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(contentDir, "web-api.json"), []byte(testDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	bus := events.NewBus()
	t.Cleanup(func() { bus.Close() })

	cfg := config.DefaultConfig()
	cfg.SiteName = "Test Portfolio"
	cfg.ContentDir = contentDir
	cfg.ProjectsFile = filepath.Join(contentDir, "projects.json")

	srv, err := New(cfg, zap.NewNop(), database, bus)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	w := get(t, srv, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestSelectorPage(t *testing.T) {
	srv := newTestServer(t)

	w := get(t, srv, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		"Test Portfolio",
		`href="/documentation?doc=web-api"`,
		"upload-input",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("selector missing %q", want)
		}
	}
}

func TestDocsAPI(t *testing.T) {
	srv := newTestServer(t)

	w := get(t, srv, "/api/docs")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var index []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &index); err != nil {
		t.Fatalf("unmarshal index: %v", err)
	}
	if len(index) != 1 || index[0]["id"] != "web-api" {
		t.Errorf("index = %+v", index)
	}

	w = get(t, srv, "/api/docs/web-api")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var doc map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal doc: %v", err)
	}
	if doc["id"] != "web-api" {
		t.Errorf("doc id = %v", doc["id"])
	}

	w = get(t, srv, "/api/docs/no-such-doc")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDocumentationPage(t *testing.T) {
	srv := newTestServer(t)

	w := get(t, srv, "/documentation?doc=web-api")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		`<section id="overview" class="doc-section">`,
		`data-section-id="overview"`,
		`data-doc-id="web-api"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("viewer missing %q", want)
		}
	}
}

func TestDocumentationMissingRedirectsToSelector(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/documentation", "/documentation?doc=missing"} {
		w := get(t, srv, path)
		if w.Code != http.StatusSeeOther {
			t.Errorf("%s: expected 303 redirect, got %d", path, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/" {
			t.Errorf("%s: redirect to %q, want /", path, loc)
		}
	}
}

func TestDocumentationTraversalRedirectsToSelector(t *testing.T) {
	srv := newTestServer(t)

	// A readable JSON file one level above the content directory must
	// stay unreachable through the doc id.
	leaked := strings.Replace(testDoc, "Web API", "Internal Notes", 1)
	outside := filepath.Join(srv.cfg.ContentDir, "..", "secret.json")
	if err := os.WriteFile(outside, []byte(leaked), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{
		"/documentation?doc=..%2Fsecret",
		"/documentation?doc=..%5Csecret",
		"/documentation?doc=sub%2F..%2F..%2Fsecret",
	} {
		w := get(t, srv, path)
		if w.Code != http.StatusSeeOther {
			t.Errorf("%s: expected 303 redirect, got %d", path, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/" {
			t.Errorf("%s: redirect to %q, want /", path, loc)
		}
		if strings.Contains(w.Body.String(), "Internal Notes") {
			t.Errorf("%s: response leaked file contents", path)
		}
	}

	w := get(t, srv, "/api/docs/..")
	if w.Code != http.StatusNotFound {
		t.Errorf("api traversal id: expected 404, got %d", w.Code)
	}
}

func TestUploadedDocumentRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	payload := `{"id": "mine", "title": "Mine", "content": {"sections": [
		{"id": "s1", "title": "One", "content": [{"type": "paragraph", "text": "hi"}]}
	]}}`
	req := httptest.NewRequest("POST", "/api/uploads", strings.NewReader(payload))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("upload: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var cookie string
	for _, c := range w.Result().Cookies() {
		if c.Name == "showfolio_session" {
			cookie = c.Value
		}
	}
	if cookie == "" {
		t.Fatal("upload did not set a session cookie")
	}

	req = httptest.NewRequest("GET", "/documentation?doc=mine&source=upload", nil)
	req.AddCookie(&http.Cookie{Name: "showfolio_session", Value: cookie})
	w2 := httptest.NewRecorder()
	srv.Router().ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("viewer: expected 200, got %d", w2.Code)
	}
	if !strings.Contains(w2.Body.String(), `<section id="s1"`) {
		t.Error("uploaded document did not render")
	}

	// Another session cannot see the upload.
	req = httptest.NewRequest("GET", "/documentation?doc=mine&source=upload", nil)
	w3 := httptest.NewRecorder()
	srv.Router().ServeHTTP(w3, req)
	if w3.Code != http.StatusSeeOther {
		t.Errorf("cross-session viewer: expected 303, got %d", w3.Code)
	}
}

func TestProjectsPageAndAssets(t *testing.T) {
	srv := newTestServer(t)

	if w := get(t, srv, "/projects"); w.Code != http.StatusOK ||
		!strings.Contains(w.Body.String(), "carousel-track") {
		t.Errorf("projects page: code %d", w.Code)
	}
	if w := get(t, srv, "/assets/style.css"); w.Code != http.StatusOK ||
		w.Header().Get("Content-Type") != "text/css; charset=utf-8" {
		t.Errorf("style.css: code %d, type %q", w.Code, w.Header().Get("Content-Type"))
	}
	if w := get(t, srv, "/assets/app.js"); w.Code != http.StatusOK {
		t.Errorf("app.js: code %d", w.Code)
	}
	if w := get(t, srv, "/assets/nope.txt"); w.Code != http.StatusNotFound {
		t.Errorf("unknown asset: code %d", w.Code)
	}
}

func TestProjectsAPIEmptyFallback(t *testing.T) {
	srv := newTestServer(t)

	w := get(t, srv, "/api/projects")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []any
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("missing projects file should yield empty list, got %v", list)
	}
}
