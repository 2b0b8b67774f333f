// Package server runs the live portfolio: server-rendered pages over
// the same content the static builder uses, plus the JSON API, the
// upload endpoints, and the event websocket.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"showfolio/internal/config"
	"showfolio/internal/content"
	"showfolio/internal/db"
	"showfolio/internal/docs"
	"showfolio/internal/events"
	"showfolio/internal/projects"
	"showfolio/internal/render"
	"showfolio/internal/site"
	"showfolio/internal/uploads"
)

// Server wires the loaders, stores, and page renderer behind one chi
// router.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *db.DB

	pages          *site.PageRenderer
	docsLoader     *docs.Loader
	projectsLoader *projects.Loader
	uploadStore    *uploads.Store
	bus            *events.Bus
	hub            *events.Hub

	router     chi.Router
	httpServer *http.Server
}

// New builds a server from its dependencies. The event bus and
// database are owned by the caller.
func New(cfg *config.Config, logger *zap.Logger, database *db.DB, bus *events.Bus) (*Server, error) {
	pages, err := site.NewPageRenderer(cfg.SiteName, string(cfg.Theme), render.NewManager(logger))
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:            cfg,
		logger:         logger,
		db:             database,
		pages:          pages,
		docsLoader:     docs.NewLoader(cfg.ContentDir, bus, logger),
		projectsLoader: projects.NewLoader(cfg.ProjectsFile, cfg.ProjectCacheTTL(), database, bus, logger),
		uploadStore:    uploads.NewStore(database),
		bus:            bus,
		hub:            events.NewHub(bus, logger),
	}
	s.router = s.buildRouter()
	return s, nil
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Pages.
	r.Get("/", s.handleSelector)
	r.Get("/documentation", s.handleDocumentation)
	r.Get("/projects", s.handleProjects)
	r.Get("/assets/{name}", s.handleAsset)

	// JSON API.
	r.Get("/api/docs", s.handleDocsIndex)
	r.Get("/api/docs/{id}", s.handleDocJSON)
	projects.RegisterRoutes(r, s.projectsLoader)
	uploads.RegisterRoutes(r, s.uploadStore, s.logger)

	// Events.
	r.Get("/ws/events", s.hub.ServeWS)

	return r
}

// Router returns the chi router, for tests and route registration.
func (s *Server) Router() chi.Router { return s.router }

func (s *Server) handleSelector(w http.ResponseWriter, r *http.Request) {
	entries := s.docsLoader.LoadIndex()

	// The visitor's own uploads join the grid, linked through the
	// upload source so the viewer resolves them from the session.
	uploaded := make(map[string]bool)
	if session, err := r.Cookie("showfolio_session"); err == nil {
		if extra, err := s.uploadStore.List(r.Context(), session.Value); err == nil {
			for _, e := range extra {
				uploaded[e.ID] = true
				entries = append(entries, e)
			}
		}
	}

	page, err := s.pages.SelectorPage(entries, "/assets/", true, func(id string) string {
		if uploaded[id] {
			return "/documentation?doc=" + id + "&source=upload"
		}
		return "/documentation?doc=" + id
	})
	if err != nil {
		s.logger.Error("rendering selector", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, page)
}

// handleDocumentation serves the viewer. A missing or unloadable
// document redirects back to the selector instead of rendering a
// partial page.
func (s *Server) handleDocumentation(w http.ResponseWriter, r *http.Request) {
	docID := r.URL.Query().Get("doc")
	if docID == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	doc, err := s.resolveDocument(w, r, docID)
	if err != nil {
		s.logger.Warn("documentation not available",
			zap.String("doc", docID), zap.Error(err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	page, err := s.pages.DocumentPage(doc, "/assets/")
	if err != nil {
		s.logger.Error("rendering documentation", zap.String("doc", docID), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, page)
}

func (s *Server) resolveDocument(w http.ResponseWriter, r *http.Request, docID string) (*content.DocumentationSet, error) {
	if r.URL.Query().Get("source") == "upload" {
		return s.uploadStore.Get(r.Context(), uploads.SessionID(w, r), docID)
	}
	return s.docsLoader.LoadDocument(docID)
}

func (s *Server) handleDocsIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.docsLoader.LoadIndex())
}

func (s *Server) handleDocJSON(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "id")
	doc, err := s.resolveDocument(w, r, docID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "documentation not found"})
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	page, err := s.pages.ProjectsPage("/assets/")
	if err != nil {
		s.logger.Error("rendering projects page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, page)
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	data, ok := site.Assets()[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	switch {
	case strings.HasSuffix(name, ".css"):
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
	case strings.HasSuffix(name, ".js"):
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	}
	w.Write(data)
}

func writeHTML(w http.ResponseWriter, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Start begins listening on the configured port and runs the websocket
// hub until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if err := s.hub.Run(ctx); err != nil {
		return fmt.Errorf("starting event hub: %w", err)
	}

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("server listening", zap.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
