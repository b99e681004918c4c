package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"pdfqa-backend/internal/shared/storage/object"
)

// Extractor pulls plain text out of stored PDF objects.
type Extractor struct{}

// Text reads a stored PDF and returns its concatenated plain text.
func (Extractor) Text(ctx context.Context, store object.ObjectStore, storageKey string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := store.Open(ctx, storageKey)
	if err != nil {
		return "", fmt.Errorf("extract text key=%s: %w", storageKey, err)
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("extract text key=%s: read: %w", storageKey, err)
	}

	text, err := FromBytes(raw)
	if err != nil {
		return "", fmt.Errorf("extract text key=%s: %w", storageKey, err)
	}
	return text, nil
}

// FromBytes extracts text from an in-memory PDF, page by page in page order.
// Pages are separated by single newlines; a page that cannot be read
// contributes an empty string rather than failing the whole document.
func FromBytes(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		if i > 1 {
			b.WriteByte('\n')
		}
		b.WriteString(pageText(r.Page(i)))
	}
	return b.String(), nil
}

func pageText(page pdf.Page) (text string) {
	// The parser panics on some malformed content streams; an unreadable
	// page yields "" instead of aborting the document.
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}
