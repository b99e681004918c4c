package questions_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"pdfqa-backend/internal/bootstrap"
	"pdfqa-backend/internal/documents"
	"pdfqa-backend/internal/shared/config"
)

var errQuota = errors.New("quota exceeded")

func buildApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:3000"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func askJSON(t *testing.T, app *bootstrap.App, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	return resp
}

func TestAskEndpointReturnsAnswer(t *testing.T) {
	app := buildApp(t)
	doc, err := app.DocumentsRepo.Create(context.Background(), documents.Document{
		Filename:    "test.pdf",
		TextContent: "Hello World",
	})
	if err != nil {
		t.Fatalf("seed document: %v", err)
	}
	stub := &recordingQA{answer: "It says Hello World."}
	app.QuestionsService.QA = stub

	resp := askJSON(t, app, `{"document_id": 1, "question": "What does it say?"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var got struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Answer != "It says Hello World." {
		t.Fatalf("expected answer passthrough, got %q", got.Answer)
	}
	if stub.gotContext != doc.TextContent {
		t.Fatalf("expected stored text as QA context, got %q", stub.gotContext)
	}
}

func TestAskEndpointDocumentNotFound(t *testing.T) {
	app := buildApp(t)
	stub := &recordingQA{answer: "never"}
	app.QuestionsService.QA = stub

	resp := askJSON(t, app, `{"document_id": 999, "question": "..."}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got["error"] != "Document not found" {
		t.Fatalf(`expected {"error": "Document not found"}, got %v`, got)
	}
	if stub.calls != 0 {
		t.Fatalf("expected QA client untouched, got %d calls", stub.calls)
	}
}

func TestAskEndpointInvalidBody(t *testing.T) {
	app := buildApp(t)

	resp := askJSON(t, app, `{"document_id": "not a number"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestAskEndpointQAFailureIsBadGateway(t *testing.T) {
	app := buildApp(t)
	if _, err := app.DocumentsRepo.Create(context.Background(), documents.Document{
		Filename:    "test.pdf",
		TextContent: "Hello World",
	}); err != nil {
		t.Fatalf("seed document: %v", err)
	}
	app.QuestionsService.QA = &recordingQA{err: errQuota}

	resp := askJSON(t, app, `{"document_id": 1, "question": "q"}`)
	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", resp.Code, resp.Body.String())
	}
	if strings.Contains(resp.Body.String(), "quota") {
		t.Fatalf("expected no internal detail in response, got %s", resp.Body.String())
	}
}
