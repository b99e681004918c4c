package documents

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"pdfqa-backend/internal/shared/storage/object"
	"pdfqa-backend/internal/shared/util"
)

// TextExtractor pulls plain text out of a stored object.
type TextExtractor interface {
	Text(ctx context.Context, store object.ObjectStore, storageKey string) (string, error)
}

// Service contains business logic for documents.
type Service struct {
	Store     object.ObjectStore
	Repo      DocumentsRepo
	Extractor TextExtractor
}

// Upload saves the file to object storage, extracts its text and records the
// document. The returned document carries the store-assigned id.
func (s *Service) Upload(ctx context.Context, fileName string, r io.Reader) (Document, error) {
	if strings.TrimSpace(fileName) == "" {
		return Document{}, ErrInvalidInput
	}
	if _, err := util.SanitizeFileName(fileName); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, fileName, r)
	if err != nil {
		return Document{}, fmt.Errorf("%w: save upload: %v", ErrStorage, err)
	}

	text, err := s.Extractor.Text(ctx, s.Store, storageKey)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	doc := Document{
		Filename:    fileName,
		TextContent: text,
		StorageKey:  storageKey,
		SizeBytes:   size,
		MimeType:    mimeType,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.Repo.Create(ctx, doc)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return created, nil
}

// GetByID returns a stored document. Reads never mutate state.
func (s *Service) GetByID(ctx context.Context, id int64) (Document, error) {
	return s.Repo.GetByID(ctx, id)
}
