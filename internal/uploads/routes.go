package uploads

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"showfolio/internal/content"
)

const (
	sessionCookie  = "showfolio_session"
	maxPayloadSize = 5 << 20
)

// RegisterRoutes mounts the upload endpoints on the given router.
func RegisterRoutes(r chi.Router, store *Store, logger *zap.Logger) {
	r.Post("/api/uploads", createUploadHandler(store, logger))
	r.Get("/api/uploads", listUploadsHandler(store))
	r.Delete("/api/uploads/{id}", deleteUploadHandler(store))
}

// SessionID returns the browser session id, minting and setting the
// cookie on first contact.
func SessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

type uploadResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func createUploadHandler(store *Store, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadSize+1))
		if err != nil {
			http.Error(w, "reading request body", http.StatusBadRequest)
			return
		}
		if len(payload) > maxPayloadSize {
			http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
			return
		}

		doc, err := content.ParseDocument(payload)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid documentation JSON: %v", err), http.StatusBadRequest)
			return
		}

		// When the caller names the document it expects, the payload
		// id must match; otherwise the payload id is authoritative.
		requestedID := r.URL.Query().Get("doc")
		if requestedID == "" {
			requestedID = doc.ID
		}
		if err := doc.ValidateUpload(requestedID); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		sessionID := SessionID(w, r)
		if err := store.Save(r.Context(), sessionID, doc, payload); err != nil {
			logger.Error("saving upload", zap.String("doc", doc.ID), zap.Error(err))
			http.Error(w, "storing upload", http.StatusInternalServerError)
			return
		}

		viewerURL := "/documentation?" + url.Values{
			"doc":    {doc.ID},
			"source": {"upload"},
		}.Encode()
		writeJSON(w, http.StatusCreated, uploadResponse{ID: doc.ID, URL: viewerURL})
	}
}

func listUploadsHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := store.List(r.Context(), SessionID(w, r))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if entries == nil {
			entries = []content.IndexEntry{}
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

func deleteUploadHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		err := store.Delete(r.Context(), SessionID(w, r), id)
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "upload not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
