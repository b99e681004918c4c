package questions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pdfqa-backend/internal/documents"
	"pdfqa-backend/internal/qa"
)

const defaultTimeout = 60 * time.Second

// Service answers questions about stored documents. Every call is stateless
// beyond the stored document text.
type Service struct {
	Docs    documents.DocumentsRepo
	QA      qa.Client
	Timeout time.Duration
}

// Ask looks up the document, then delegates to the QA client with the whole
// document text as context. The generated answer is returned unmodified. A
// missing document never reaches the QA client.
func (s *Service) Ask(ctx context.Context, documentID int64, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("%w: question is required", ErrInvalidInput)
	}

	doc, err := s.Docs.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return "", ErrDocumentNotFound
		}
		return "", fmt.Errorf("lookup document %d: %w", documentID, err)
	}

	if s.QA == nil {
		return "", fmt.Errorf("%w: %v", ErrAnswerFailed, qa.ErrNotConfigured)
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	qaCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	answer, err := s.QA.Answer(qaCtx, question, doc.TextContent)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || qaCtx.Err() != nil {
			return "", fmt.Errorf("%w: %v", ErrAnswerTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", ErrAnswerFailed, err)
	}

	return answer, nil
}
