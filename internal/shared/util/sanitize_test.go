package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "report.pdf", want: "report.pdf"},
		{name: "spaces trimmed", input: "  notes.pdf  ", want: "notes.pdf"},
		{name: "slashes replaced", input: "a/b\\c.pdf", want: "a_b_c.pdf"},
		{name: "traversal rejected", input: "../../etc/passwd", wantErr: true},
		{name: "empty rejected", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeFileName(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("SanitizeFileName(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
