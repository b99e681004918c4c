package questions

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrAnswerFailed     = errors.New("answer failed")
	ErrAnswerTimeout    = errors.New("answer timed out")
)
