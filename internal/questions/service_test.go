package questions_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pdfqa-backend/internal/documents"
	"pdfqa-backend/internal/questions"
)

type recordingQA struct {
	calls       int
	gotQuestion string
	gotContext  string
	answer      string
	err         error
	block       bool
}

func (r *recordingQA) Answer(ctx context.Context, question string, contextText string) (string, error) {
	r.calls++
	r.gotQuestion = question
	r.gotContext = contextText
	if r.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return r.answer, r.err
}

func seedDocument(t *testing.T, repo documents.DocumentsRepo, text string) documents.Document {
	t.Helper()
	doc, err := repo.Create(context.Background(), documents.Document{
		Filename:    "test.pdf",
		TextContent: text,
		StorageKey:  "key_test.pdf",
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed document: %v", err)
	}
	return doc
}

func TestAskReturnsAnswerVerbatim(t *testing.T) {
	repo := documents.NewMemoryRepo()
	doc := seedDocument(t, repo, "Hello World")
	stub := &recordingQA{answer: "It says Hello World."}
	svc := &questions.Service{Docs: repo, QA: stub}

	answer, err := svc.Ask(context.Background(), doc.ID, "What does it say?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if answer != "It says Hello World." {
		t.Fatalf("expected answer returned unmodified, got %q", answer)
	}
	if stub.calls != 1 {
		t.Fatalf("expected 1 QA call, got %d", stub.calls)
	}
	if stub.gotQuestion != "What does it say?" {
		t.Fatalf("expected question passed through, got %q", stub.gotQuestion)
	}
	if stub.gotContext != "Hello World" {
		t.Fatalf("expected stored text as context, got %q", stub.gotContext)
	}
}

func TestAskUnknownDocumentNeverCallsQA(t *testing.T) {
	repo := documents.NewMemoryRepo()
	stub := &recordingQA{answer: "never"}
	svc := &questions.Service{Docs: repo, QA: stub}

	_, err := svc.Ask(context.Background(), 999, "anything")
	if !errors.Is(err, questions.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
	if stub.calls != 0 {
		t.Fatalf("expected 0 QA calls, got %d", stub.calls)
	}
}

func TestAskEmptyQuestionRejected(t *testing.T) {
	repo := documents.NewMemoryRepo()
	seedDocument(t, repo, "text")
	stub := &recordingQA{}
	svc := &questions.Service{Docs: repo, QA: stub}

	_, err := svc.Ask(context.Background(), 1, "   ")
	if !errors.Is(err, questions.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if stub.calls != 0 {
		t.Fatalf("expected 0 QA calls, got %d", stub.calls)
	}
}

func TestAskSurfacesQAFailure(t *testing.T) {
	repo := documents.NewMemoryRepo()
	doc := seedDocument(t, repo, "text")
	stub := &recordingQA{err: errors.New("quota exceeded")}
	svc := &questions.Service{Docs: repo, QA: stub}

	_, err := svc.Ask(context.Background(), doc.ID, "q")
	if !errors.Is(err, questions.ErrAnswerFailed) {
		t.Fatalf("expected ErrAnswerFailed, got %v", err)
	}
}

func TestAskBoundsQACallWithTimeout(t *testing.T) {
	repo := documents.NewMemoryRepo()
	doc := seedDocument(t, repo, "text")
	stub := &recordingQA{block: true}
	svc := &questions.Service{Docs: repo, QA: stub, Timeout: 10 * time.Millisecond}

	_, err := svc.Ask(context.Background(), doc.ID, "q")
	if !errors.Is(err, questions.ErrAnswerTimeout) {
		t.Fatalf("expected ErrAnswerTimeout, got %v", err)
	}
}
