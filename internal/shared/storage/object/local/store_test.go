package local

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	key, size, mimeType, err := store.Save(ctx, "report.pdf", strings.NewReader("%PDF-1.4 content"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if key == "report.pdf" {
		t.Fatal("expected storage key decoupled from client filename")
	}
	if !strings.HasSuffix(key, "_report.pdf") {
		t.Fatalf("expected sanitized name in key, got %q", key)
	}
	if size != int64(len("%PDF-1.4 content")) {
		t.Fatalf("expected size %d, got %d", len("%PDF-1.4 content"), size)
	}
	if mimeType == "" {
		t.Fatal("expected sniffed mime type")
	}

	body, err := store.Open(ctx, key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "%PDF-1.4 content" {
		t.Fatalf("expected content round-trip, got %q", data)
	}
}

func TestSaveSameFilenameGetsDistinctKeys(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	key1, _, _, err := store.Save(ctx, "same.pdf", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("Save first: %v", err)
	}
	key2, _, _, err := store.Save(ctx, "same.pdf", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("Save second: %v", err)
	}
	if key1 == key2 {
		t.Fatalf("expected distinct keys, both %q", key1)
	}
}

func TestSaveRejectsTraversalFilename(t *testing.T) {
	store := New(t.TempDir())

	if _, _, _, err := store.Save(context.Background(), "../../etc/passwd", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for traversal filename")
	}
}

func TestOpenRejectsTraversalKey(t *testing.T) {
	store := New(t.TempDir())

	if _, err := store.Open(context.Background(), "../secret"); err == nil {
		t.Fatal("expected error for traversal key")
	}
	if _, err := store.Open(context.Background(), "/etc/passwd"); err == nil {
		t.Fatal("expected error for absolute key")
	}
}
