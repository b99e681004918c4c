package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving and retrieving uploaded files.
// Save assigns an internal storage key decoupled from the client-supplied name.
type ObjectStore interface {
	Save(ctx context.Context, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
