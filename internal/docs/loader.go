// Package docs loads documentation sets from the content directory,
// builds tables of contents, and models the viewer's navigation state.
package docs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"showfolio/internal/content"
	"showfolio/internal/events"
)

// Loader reads the documentation index and individual documentation
// sets from disk. Parsed documents are cached; repeat loads of the
// same id return the identical pointer without touching the
// filesystem again.
type Loader struct {
	contentDir string
	bus        *events.Bus
	logger     *zap.Logger

	mu    sync.RWMutex
	cache map[string]*content.DocumentationSet
}

func NewLoader(contentDir string, bus *events.Bus, logger *zap.Logger) *Loader {
	return &Loader{
		contentDir: contentDir,
		bus:        bus,
		logger:     logger,
		cache:      make(map[string]*content.DocumentationSet),
	}
}

// LoadIndex reads index.json from the content directory. Failures are
// not fatal: the error is logged, an empty index is returned, and the
// loaded event is published either way so listeners never hang waiting
// for data that will not arrive.
func (l *Loader) LoadIndex() []content.IndexEntry {
	entries, err := l.readIndex()
	fallback := false
	if err != nil {
		l.logger.Error("loading documentation index", zap.Error(err))
		entries = []content.IndexEntry{}
		fallback = true
	}

	if l.bus != nil {
		evt := events.IndexLoaded{Count: len(entries), Fallback: fallback, LoadedAt: time.Now().UTC()}
		if err := l.bus.Publish(events.TopicDocumentationIndexLoaded, evt); err != nil {
			l.logger.Warn("publishing index loaded event", zap.Error(err))
		}
	}
	return entries
}

func (l *Loader) readIndex() ([]content.IndexEntry, error) {
	data, err := os.ReadFile(filepath.Join(l.contentDir, "index.json"))
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	var entries []content.IndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing index: %w", err)
	}
	return entries, nil
}

// validDocID reports whether id is a plain slug. Ids arrive from the
// request URL, so anything that could name a path outside the content
// directory is rejected before it reaches the filesystem.
func validDocID(id string) bool {
	if id == "" || strings.Contains(id, "..") {
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}

// LoadDocument returns the documentation set with the given id,
// reading and parsing <contentDir>/<id>.json on first use.
func (l *Loader) LoadDocument(id string) (*content.DocumentationSet, error) {
	if !validDocID(id) {
		return nil, fmt.Errorf("invalid documentation id %q", id)
	}

	l.mu.RLock()
	doc, ok := l.cache[id]
	l.mu.RUnlock()
	if ok {
		return doc, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	// Another goroutine may have filled the slot while the write lock
	// was contended.
	if doc, ok := l.cache[id]; ok {
		return doc, nil
	}

	data, err := os.ReadFile(filepath.Join(l.contentDir, id+".json"))
	if err != nil {
		return nil, fmt.Errorf("reading documentation %s: %w", id, err)
	}
	doc, err = content.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing documentation %s: %w", id, err)
	}
	l.cache[id] = doc
	return doc, nil
}

// Invalidate drops a cached document so the next load rereads it.
func (l *Loader) Invalidate(id string) {
	l.mu.Lock()
	delete(l.cache, id)
	l.mu.Unlock()
}
