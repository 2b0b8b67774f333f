package projects

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the project data endpoints on the given router.
func RegisterRoutes(r chi.Router, loader *Loader) {
	r.Get("/api/projects", listProjectsHandler(loader))
	r.Get("/api/projects/categories", listCategoriesHandler(loader))
}

func listProjectsHandler(loader *Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list := loader.Load()
		if category := r.URL.Query().Get("category"); category != "" {
			filtered := make([]Project, 0, len(list))
			for _, p := range list {
				if p.Category == category {
					filtered = append(filtered, p)
				}
			}
			list = filtered
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func listCategoriesHandler(loader *Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories := NewCarousel(loader.Load()).Categories()
		if categories == nil {
			categories = []string{}
		}
		writeJSON(w, http.StatusOK, categories)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
