package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"showfolio/internal/content"
	"showfolio/internal/progress"
	"showfolio/internal/render"
)

// Builder writes the whole portfolio as a static site: the selector,
// one viewer page per documentation set, the projects showcase, the
// search index, and the shared assets.
type Builder struct {
	ContentDir   string
	ProjectsFile string
	OutputDir    string
	SiteName     string
	Theme        string
	Include      []string
	Exclude      []string

	Reporter progress.Reporter
	Logger   *zap.Logger
}

// Build generates the site and returns the number of pages written.
// Documents that fail to parse are skipped with a log entry; an
// otherwise healthy build is not aborted by one bad file.
func (b *Builder) Build() (int, error) {
	pages, err := NewPageRenderer(b.SiteName, b.Theme, render.NewManager(b.Logger))
	if err != nil {
		return 0, err
	}

	paths, err := DiscoverDocuments(b.ContentDir, b.Include, b.Exclude)
	if err != nil {
		return 0, err
	}
	if len(paths) == 0 {
		return 0, fmt.Errorf("no documentation files found in %s", b.ContentDir)
	}

	var sets []*content.DocumentationSet
	for _, rel := range paths {
		data, err := os.ReadFile(filepath.Join(b.ContentDir, filepath.FromSlash(rel)))
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", rel, err)
		}
		doc, err := content.ParseDocument(data)
		if err != nil {
			b.Logger.Warn("skipping invalid documentation file",
				zap.String("path", rel), zap.Error(err))
			continue
		}
		sets = append(sets, doc)
	}
	if len(sets) == 0 {
		return 0, fmt.Errorf("no valid documentation files in %s", b.ContentDir)
	}

	if err := os.MkdirAll(b.OutputDir, 0o755); err != nil {
		return 0, err
	}

	// Shared assets.
	for name, data := range Assets() {
		if err := os.WriteFile(filepath.Join(b.OutputDir, name), data, 0o644); err != nil {
			return 0, err
		}
	}

	entries := b.indexEntries(sets)

	if b.Reporter != nil {
		b.Reporter.Start(len(sets) + 2)
	}
	pageCount := 0

	// Selector.
	selector, err := pages.SelectorPage(entries, "", false, func(id string) string {
		return "documentation/" + id + "/index.html"
	})
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(b.OutputDir, "index.html"), selector, 0o644); err != nil {
		return 0, err
	}
	pageCount++
	b.report(pageCount, "index.html")

	// One viewer page per documentation set.
	for _, doc := range sets {
		page, err := pages.DocumentPage(doc, "../../")
		if err != nil {
			return 0, err
		}
		dir := filepath.Join(b.OutputDir, "documentation", doc.ID)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, err
		}
		if err := os.WriteFile(filepath.Join(dir, "index.html"), page, 0o644); err != nil {
			return 0, err
		}
		pageCount++
		b.report(pageCount, "documentation/"+doc.ID)
	}

	// Projects showcase plus its data file, served at the same path
	// the live API uses so the client code needs no build-mode switch.
	projectsPage, err := pages.ProjectsPage("../")
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Join(b.OutputDir, "projects"), 0o755); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(b.OutputDir, "projects", "index.html"), projectsPage, 0o644); err != nil {
		return 0, err
	}
	pageCount++
	b.report(pageCount, "projects")

	if err := b.writeProjectsData(); err != nil {
		return 0, err
	}

	// Search index over every section.
	index := BuildSearchIndex(sets)
	if err := WriteSearchIndex(index, filepath.Join(b.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	if b.Reporter != nil {
		b.Reporter.Finish()
	}
	return pageCount, nil
}

// indexEntries prefers the authored index.json ordering and falls back
// to entries derived from the documents themselves.
func (b *Builder) indexEntries(sets []*content.DocumentationSet) []content.IndexEntry {
	data, err := os.ReadFile(filepath.Join(b.ContentDir, "index.json"))
	if err == nil {
		var entries []content.IndexEntry
		if err := json.Unmarshal(data, &entries); err == nil {
			known := make(map[string]bool, len(sets))
			for _, doc := range sets {
				known[doc.ID] = true
			}
			kept := entries[:0]
			for _, e := range entries {
				if known[e.ID] {
					kept = append(kept, e)
				}
			}
			if len(kept) > 0 {
				return kept
			}
		} else {
			b.Logger.Warn("ignoring malformed index.json", zap.Error(err))
		}
	}

	entries := make([]content.IndexEntry, 0, len(sets))
	for _, doc := range sets {
		entries = append(entries, doc.IndexEntry())
	}
	return entries
}

func (b *Builder) writeProjectsData() error {
	data, err := os.ReadFile(b.ProjectsFile)
	if err != nil {
		// Projects are optional; the showcase shows its empty state.
		b.Logger.Warn("projects file not readable, skipping", zap.Error(err))
		return nil
	}
	if !json.Valid(data) {
		b.Logger.Warn("projects file is not valid JSON, skipping",
			zap.String("path", b.ProjectsFile))
		return nil
	}
	dir := filepath.Join(b.OutputDir, "api")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "projects"), data, 0o644)
}

func (b *Builder) report(current int, page string) {
	if b.Reporter != nil {
		b.Reporter.Update(current, strings.TrimSuffix(page, "/index.html"))
	}
}
