package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/pith"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pith.ContentStore = (*ContentStore)(nil)

// ContentStore implements pith.ContentStore using SQLite. Records persist
// across restarts and are keyed by the extraction cache key; saving under an
// existing key replaces the previous record.
type ContentStore struct {
	db *DB
}

// NewContentStore creates a new ContentStore.
func NewContentStore(db *DB) *ContentStore {
	return &ContentStore{db: db}
}

// SaveContent persists a content record under the cache key.
func (s *ContentStore) SaveContent(ctx context.Context, key string, content *pith.ExtractedContent) error {
	if content == nil {
		return pith.Errorf(pith.EINVALID, "no content to save")
	}

	payload, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("encode content: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO content (id, cache_key, url, title, fingerprint, payload, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			url = excluded.url,
			title = excluded.title,
			fingerprint = excluded.fingerprint,
			payload = excluded.payload,
			saved_at = excluded.saved_at
	`, uuid.New().String(), key, content.URL, content.Title, content.Fingerprint,
		string(payload), time.Now().UTC().Format(time.RFC3339))

	return err
}

// FindContentByKey retrieves a record by cache key.
func (s *ContentStore) FindContentByKey(ctx context.Context, key string) (*pith.ExtractedContent, error) {
	var payload string

	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM content WHERE cache_key = ?
	`, key).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, pith.Errorf(pith.ENOTFOUND, "content not found")
	}
	if err != nil {
		return nil, err
	}

	return decodePayload(payload)
}

// FindContentByURL retrieves all stored records for a source URL, most
// recently saved first.
func (s *ContentStore) FindContentByURL(ctx context.Context, url string) ([]*pith.ExtractedContent, error) {
	return s.findByColumn(ctx, "url", url)
}

// FindContentByFingerprint retrieves all stored records sharing a
// fingerprint, most recently saved first.
func (s *ContentStore) FindContentByFingerprint(ctx context.Context, fingerprint string) ([]*pith.ExtractedContent, error) {
	return s.findByColumn(ctx, "fingerprint", fingerprint)
}

// DeleteContent removes the record for the cache key.
func (s *ContentStore) DeleteContent(ctx context.Context, key string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM content WHERE cache_key = ?", key)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pith.Errorf(pith.ENOTFOUND, "content not found")
	}

	return nil
}

func (s *ContentStore) findByColumn(ctx context.Context, column, value string) ([]*pith.ExtractedContent, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT payload FROM content WHERE "+column+" = ? ORDER BY saved_at DESC", value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*pith.ExtractedContent
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}

		content, err := decodePayload(payload)
		if err != nil {
			return nil, err
		}
		records = append(records, content)
	}

	return records, rows.Err()
}

func decodePayload(payload string) (*pith.ExtractedContent, error) {
	var content pith.ExtractedContent
	if err := json.Unmarshal([]byte(payload), &content); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	return &content, nil
}
