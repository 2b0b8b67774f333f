package projects

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"showfolio/internal/db"
	"showfolio/internal/events"
)

const cacheKey = "projects"

// Loader reads the project list from disk with two cache tiers: an
// in-memory TTL cache for the running process and a sqlite-backed copy
// that survives restarts. Both expire on the same TTL.
type Loader struct {
	projectsFile string
	ttl          time.Duration
	memory       *gocache.Cache
	store        *db.DB
	bus          *events.Bus
	logger       *zap.Logger
	now          func() time.Time
}

func NewLoader(projectsFile string, ttl time.Duration, store *db.DB, bus *events.Bus, logger *zap.Logger) *Loader {
	return &Loader{
		projectsFile: projectsFile,
		ttl:          ttl,
		memory:       gocache.New(ttl, 10*time.Minute),
		store:        store,
		bus:          bus,
		logger:       logger,
		now:          time.Now,
	}
}

// Load returns the project list, consulting the memory cache, then the
// persistent cache, then the data file. Failures fall back to an empty
// list; the loaded event is published on every call so listeners can
// rely on it firing.
func (l *Loader) Load() []Project {
	list, fromCache, err := l.load()
	fallback := false
	if err != nil {
		l.logger.Error("loading projects", zap.Error(err))
		list = []Project{}
		fallback = true
	}

	if l.bus != nil {
		evt := events.ProjectsLoaded{
			Count:     len(list),
			FromCache: fromCache,
			Fallback:  fallback,
			LoadedAt:  l.now().UTC(),
		}
		if err := l.bus.Publish(events.TopicProjectsDataLoaded, evt); err != nil {
			l.logger.Warn("publishing projects loaded event", zap.Error(err))
		}
	}
	return list
}

func (l *Loader) load() ([]Project, bool, error) {
	if cached, ok := l.memory.Get(cacheKey); ok {
		return cached.([]Project), true, nil
	}

	if list, ok := l.loadPersistent(); ok {
		l.memory.Set(cacheKey, list, gocache.DefaultExpiration)
		return list, true, nil
	}

	data, err := os.ReadFile(l.projectsFile)
	if err != nil {
		return nil, false, fmt.Errorf("reading projects file: %w", err)
	}
	var list []Project
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, false, fmt.Errorf("parsing projects file: %w", err)
	}

	l.memory.Set(cacheKey, list, gocache.DefaultExpiration)
	l.savePersistent(data)
	return list, false, nil
}

// loadPersistent returns the sqlite-cached copy when present and
// fresher than the TTL.
func (l *Loader) loadPersistent() ([]Project, bool) {
	if l.store == nil {
		return nil, false
	}

	var data []byte
	var cachedAt time.Time
	row := l.store.QueryRow(
		`SELECT data, cached_at FROM project_cache WHERE cache_key = ?`, cacheKey)
	if err := row.Scan(&data, &cachedAt); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			l.logger.Warn("reading project cache", zap.Error(err))
		}
		return nil, false
	}
	if l.now().Sub(cachedAt) > l.ttl {
		return nil, false
	}

	var list []Project
	if err := json.Unmarshal(data, &list); err != nil {
		l.logger.Warn("parsing cached projects", zap.Error(err))
		return nil, false
	}
	return list, true
}

func (l *Loader) savePersistent(data []byte) {
	if l.store == nil {
		return
	}
	_, err := l.store.Exec(
		`INSERT INTO project_cache (cache_key, data, cached_at) VALUES (?, ?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET data = excluded.data, cached_at = excluded.cached_at`,
		cacheKey, data, l.now().UTC())
	if err != nil {
		l.logger.Warn("writing project cache", zap.Error(err))
	}
}

// Invalidate clears both cache tiers.
func (l *Loader) Invalidate() {
	l.memory.Delete(cacheKey)
	if l.store != nil {
		if _, err := l.store.Exec(`DELETE FROM project_cache WHERE cache_key = ?`, cacheKey); err != nil {
			l.logger.Warn("clearing project cache", zap.Error(err))
		}
	}
}
