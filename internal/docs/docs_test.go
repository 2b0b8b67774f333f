package docs

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"showfolio/internal/content"
	"showfolio/internal/events"
	"showfolio/internal/render"
)

const sampleDoc = `{
	"id": "web-api",
	"title": "Web API",
	"description": "HTTP interface reference",
	"content": {
		"sections": [
			{
				"id": "overview",
				"title": "Overview",
				"content": [
					{"type": "paragraph", "text": "The API speaks JSON."},
					{"type": "subSection", "id": "auth", "title": "Authentication",
						"content": [{"type": "paragraph", "text": "Bearer tokens."}]}
				]
			},
			{
				"id": "endpoints",
				"title": "Endpoints",
				"content": [
					{"type": "code", "language": "bash", "text": "curl /api/projects"}
				]
			}
		]
	}
}`

func writeContentDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	index := `[{"id": "web-api", "title": "Web API", "description": "HTTP interface reference", "tags": ["api"]}]`
	if err := os.WriteFile(filepath.Join(dir, "index.json"), []byte(index), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "web-api.json"), []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadIndex(t *testing.T) {
	dir := writeContentDir(t)
	loader := NewLoader(dir, nil, zap.NewNop())

	entries := loader.LoadIndex()
	if len(entries) != 1 || entries[0].ID != "web-api" {
		t.Fatalf("got %+v, want single web-api entry", entries)
	}
}

func TestLoadIndexFailSoftStillPublishes(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	msgs, err := bus.Subscribe(ctx, events.TopicDocumentationIndexLoaded)
	if err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(t.TempDir(), bus, zap.NewNop())
	entries := loader.LoadIndex()
	if entries == nil || len(entries) != 0 {
		t.Errorf("got %v, want empty non-nil index", entries)
	}

	select {
	case msg := <-msgs:
		msg.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("loaded event not published on failure")
	}
}

func TestLoadDocumentCachesPointer(t *testing.T) {
	dir := writeContentDir(t)
	loader := NewLoader(dir, nil, zap.NewNop())

	first, err := loader.LoadDocument("web-api")
	if err != nil {
		t.Fatalf("first load: %v", err)
	}

	// Remove the backing file: a second load must come from cache.
	if err := os.Remove(filepath.Join(dir, "web-api.json")); err != nil {
		t.Fatal(err)
	}
	second, err := loader.LoadDocument("web-api")
	if err != nil {
		t.Fatalf("cached load: %v", err)
	}
	if first != second {
		t.Error("cached load returned a different pointer")
	}

	loader.Invalidate("web-api")
	if _, err := loader.LoadDocument("web-api"); err == nil {
		t.Error("expected error after invalidation with file gone")
	}
}

func TestLoadDocumentMissing(t *testing.T) {
	loader := NewLoader(t.TempDir(), nil, zap.NewNop())
	if _, err := loader.LoadDocument("nope"); err == nil {
		t.Fatal("expected error for missing document")
	}
}

func TestLoadDocumentRejectsPathEscapes(t *testing.T) {
	dir := t.TempDir()
	contentDir := filepath.Join(dir, "content")
	if err := os.Mkdir(contentDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "secret.json"), []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(contentDir, nil, zap.NewNop())
	for _, id := range []string{
		"../secret",
		"..\\secret",
		"sub/../../secret",
		"/etc/passwd",
		"..",
		"",
	} {
		t.Run(id, func(t *testing.T) {
			doc, err := loader.LoadDocument(id)
			if err == nil {
				t.Fatalf("id %q loaded %q, want error", id, doc.Title)
			}
			if !strings.Contains(err.Error(), "invalid documentation id") {
				t.Errorf("err = %v", err)
			}
		})
	}
}

func TestBuildTOC(t *testing.T) {
	doc, err := content.ParseDocument([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}

	toc := BuildTOC(doc.Sections)
	want := []TOCEntry{
		{ID: "overview", Title: "Overview"},
		{ID: "overview-auth", Title: "Authentication", Level: 1},
		{ID: "endpoints", Title: "Endpoints"},
	}
	if !reflect.DeepEqual(toc.Entries, want) {
		t.Errorf("got %+v, want %+v", toc.Entries, want)
	}

	// Rebuilding must not accumulate entries.
	again := BuildTOC(doc.Sections)
	if !reflect.DeepEqual(again.Entries, want) {
		t.Errorf("rebuild changed entries: %+v", again.Entries)
	}
}

func TestTOCToHTML(t *testing.T) {
	toc := &TOC{Entries: []TOCEntry{
		{ID: "overview", Title: "Overview"},
		{ID: "overview-auth", Title: "Auth", Level: 1},
	}}
	html := toc.ToHTML("overview-auth")

	for _, want := range []string{
		`data-section-id="overview"`,
		`data-section-id="overview-auth"`,
		`toc-subsection active`,
		`href="#overview"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("TOC HTML missing %q:\n%s", want, html)
		}
	}
}

func TestRenderDocument(t *testing.T) {
	doc, err := content.ParseDocument([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}

	r := NewRenderer(render.NewManager(zap.NewNop()))
	body, toc := r.RenderDocument(doc)

	for _, want := range []string{
		`<section id="overview" class="doc-section">`,
		`<h2 class="section-title">Overview</h2>`,
		`id="overview-auth"`,
		`<p>Bearer tokens.</p>`,
		`class="copy-code-button"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if len(toc.Entries) != 3 {
		t.Errorf("got %d TOC entries, want 3", len(toc.Entries))
	}
	if got := FirstSectionID(doc); got != "overview" {
		t.Errorf("first section = %q, want overview", got)
	}
}
