package documents

import "errors"

var (
	ErrNotFound     = errors.New("document not found")
	ErrInvalidInput = errors.New("invalid input")

	// Upload pipeline stage failures, kept distinguishable at the API boundary.
	ErrStorage     = errors.New("storage failure")
	ErrExtraction  = errors.New("extraction failure")
	ErrPersistence = errors.New("persistence failure")
)
