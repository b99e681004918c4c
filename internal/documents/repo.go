package documents

import "context"

// DocumentsRepo defines persistence operations for documents.
type DocumentsRepo interface {
	// Create inserts a new row and returns it with the assigned id.
	Create(ctx context.Context, doc Document) (Document, error)
	// GetByID returns the matching row or ErrNotFound.
	GetByID(ctx context.Context, id int64) (Document, error)
}
