package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"showfolio/internal/content"
	"showfolio/internal/render"
)

const testDoc = `{
	"id": "web-api",
	"title": "Web API",
	"description": "HTTP reference",
	"content": {
		"sections": [
			{"id": "overview", "title": "Overview", "content": [
				{"type": "paragraph", "text": "The API speaks JSON."},
				{"type": "code", "language": "bash", "text": "curl /api/projects"},
				{"type": "subSection", "id": "auth", "title": "Auth", "content": [
					{"type": "paragraph", "text": "Bearer tokens."}
				]}
			]}
		]
	}
}`

func writeTestContent(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.json":   `[{"id": "web-api", "title": "Web API", "description": "HTTP reference"}]`,
		"web-api.json": testDoc,
		"notes.txt":    "not documentation",
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestDiscoverDocuments(t *testing.T) {
	dir := writeTestContent(t)

	paths, err := DiscoverDocuments(dir, []string{"**/*.json"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 || paths[0] != "web-api.json" {
		t.Errorf("paths = %v, want [web-api.json]", paths)
	}
}

func TestDiscoverDocumentsExclude(t *testing.T) {
	dir := writeTestContent(t)
	if err := os.WriteFile(filepath.Join(dir, "draft.json"), []byte(testDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	paths, err := DiscoverDocuments(dir, nil, []string{"draft*"})
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 || paths[0] != "web-api.json" {
		t.Errorf("paths = %v, want [web-api.json]", paths)
	}
}

func TestBuildWritesFullSite(t *testing.T) {
	contentDir := writeTestContent(t)
	outputDir := t.TempDir()
	projectsFile := filepath.Join(t.TempDir(), "projects.json")
	if err := os.WriteFile(projectsFile, []byte(`[{"id": "p1", "title": "P1"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	b := &Builder{
		ContentDir:   contentDir,
		ProjectsFile: projectsFile,
		OutputDir:    outputDir,
		SiteName:     "Test Portfolio",
		Theme:        "light",
		Logger:       zap.NewNop(),
	}
	pages, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if pages != 3 {
		t.Errorf("pages = %d, want 3 (selector, one doc, projects)", pages)
	}

	for _, rel := range []string{
		"index.html",
		"style.css",
		"app.js",
		"documentation/web-api/index.html",
		"projects/index.html",
		"api/projects",
		"search-index.json",
	} {
		if _, err := os.Stat(filepath.Join(outputDir, rel)); err != nil {
			t.Errorf("missing output file %s: %v", rel, err)
		}
	}

	selector, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(selector), `href="documentation/web-api/index.html"`) {
		t.Error("selector does not link the documentation page")
	}
	if !strings.Contains(string(selector), "Test Portfolio") {
		t.Error("selector missing site name")
	}

	docPage, err := os.ReadFile(filepath.Join(outputDir, "documentation", "web-api", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`<section id="overview" class="doc-section">`,
		`id="overview-auth"`,
		`data-section-id="overview"`,
		`class="copy-code-button"`,
		`href="../../style.css"`,
	} {
		if !strings.Contains(string(docPage), want) {
			t.Errorf("document page missing %q", want)
		}
	}
}

func TestBuildFailsWithoutDocuments(t *testing.T) {
	b := &Builder{
		ContentDir: t.TempDir(),
		OutputDir:  t.TempDir(),
		SiteName:   "Empty",
		Logger:     zap.NewNop(),
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("expected error for empty content dir")
	}
}

func TestBuildSearchIndex(t *testing.T) {
	doc, err := content.ParseDocument([]byte(testDoc))
	if err != nil {
		t.Fatal(err)
	}

	entries := BuildSearchIndex([]*content.DocumentationSet{doc})
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Doc != "web-api" || e.Section != "overview" {
		t.Errorf("entry = %+v", e)
	}
	if !strings.Contains(e.Content, "Bearer tokens.") {
		t.Error("search content missing nested subsection text")
	}
	if e.Path != "documentation/web-api/index.html#overview" {
		t.Errorf("path = %q", e.Path)
	}

	out := filepath.Join(t.TempDir(), "search-index.json")
	if err := WriteSearchIndex(entries, out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var roundTrip []SearchEntry
	if err := json.Unmarshal(data, &roundTrip); err != nil {
		t.Fatal(err)
	}
	if len(roundTrip) != 1 {
		t.Errorf("round trip entries = %d", len(roundTrip))
	}
}

func TestPageRendererSelectorUpload(t *testing.T) {
	p, err := NewPageRenderer("Site", "dark", render.NewManager(zap.NewNop()))
	if err != nil {
		t.Fatal(err)
	}

	entries := []content.IndexEntry{{ID: "a", Title: "A", Tags: []string{"go"}}}
	page, err := p.SelectorPage(entries, "/assets/", true, func(id string) string {
		return "/documentation?doc=" + id
	})
	if err != nil {
		t.Fatal(err)
	}
	html := string(page)
	for _, want := range []string{
		`href="/documentation?doc=a"`,
		`data-theme="dark"`,
		`id="upload-input"`,
		`href="/assets/style.css"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("selector page missing %q", want)
		}
	}

	// Upload box is omitted for the static build.
	static, err := p.SelectorPage(entries, "", false, func(id string) string { return id })
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(static), "upload-input") {
		t.Error("static selector should not include the upload form")
	}
}
