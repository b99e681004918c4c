package documents

import "time"

// Document pairs an uploaded file's name with its extracted text. The id is
// assigned by the store and never reused; text content is immutable after
// creation.
type Document struct {
	ID          int64
	Filename    string
	TextContent string
	StorageKey  string
	SizeBytes   int64
	MimeType    string
	CreatedAt   time.Time
}
