package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements DocumentsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document and returns it with the assigned id.
func (r *PGRepo) Create(ctx context.Context, doc Document) (Document, error) {
	const query = `
INSERT INTO documents (filename, text_content, storage_key, size_bytes, mime_type, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		doc.Filename,
		doc.TextContent,
		doc.StorageKey,
		doc.SizeBytes,
		doc.MimeType,
		doc.CreatedAt,
	).Scan(&doc.ID)
	if err != nil {
		return Document{}, err
	}
	return doc, nil
}

// GetByID fetches a document by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Document, error) {
	const query = `
SELECT id, filename, text_content, storage_key, size_bytes, mime_type, created_at
FROM documents
WHERE id = $1
LIMIT 1`

	var doc Document
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&doc.ID,
		&doc.Filename,
		&doc.TextContent,
		&doc.StorageKey,
		&doc.SizeBytes,
		&doc.MimeType,
		&doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

var _ DocumentsRepo = (*PGRepo)(nil)
