// Package uploads lets visitors preview their own documentation JSON
// in the viewer. Payloads are scoped to a browser session and stored
// server-side, standing in for per-tab session storage.
package uploads

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"showfolio/internal/content"
	"showfolio/internal/db"
)

var ErrNotFound = errors.New("uploaded documentation not found")

// Store persists uploaded documentation payloads keyed by session and
// document id.
type Store struct {
	db *db.DB
}

func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// Save upserts an uploaded payload. Re-uploading the same id in the
// same session replaces the earlier payload.
func (s *Store) Save(ctx context.Context, sessionID string, doc *content.DocumentationSet, payload []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO uploaded_docs (id, session_id, title, payload, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(session_id, id) DO UPDATE SET
		   title = excluded.title, payload = excluded.payload, created_at = excluded.created_at`,
		doc.ID, sessionID, doc.Title, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving upload %s: %w", doc.ID, err)
	}
	return nil
}

// Get returns the parsed documentation set for one session's upload.
func (s *Store) Get(ctx context.Context, sessionID, id string) (*content.DocumentationSet, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM uploaded_docs WHERE session_id = ? AND id = ?`,
		sessionID, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading upload %s: %w", id, err)
	}
	doc, err := content.ParseDocument(payload)
	if err != nil {
		return nil, fmt.Errorf("parsing stored upload %s: %w", id, err)
	}
	return doc, nil
}

// List returns index entries for everything the session has uploaded,
// newest first.
func (s *Store) List(ctx context.Context, sessionID string) ([]content.IndexEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM uploaded_docs WHERE session_id = ? ORDER BY created_at DESC`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing uploads: %w", err)
	}
	defer rows.Close()

	var entries []content.IndexEntry
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning upload: %w", err)
		}
		doc, err := content.ParseDocument(payload)
		if err != nil {
			continue
		}
		entries = append(entries, doc.IndexEntry())
	}
	return entries, rows.Err()
}

// Delete removes one session's upload.
func (s *Store) Delete(ctx context.Context, sessionID, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM uploaded_docs WHERE session_id = ? AND id = ?`, sessionID, id)
	if err != nil {
		return fmt.Errorf("deleting upload %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
