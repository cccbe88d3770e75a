//go:build unix

package stdfd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRedirectRestore(t *testing.T) {
	tests := []struct {
		name   string
		stream Stream
		write  func(string)
	}{
		{
			name:   "stdout",
			stream: Stdout,
			write:  func(s string) { os.Stdout.WriteString(s) },
		},
		{
			name:   "stderr",
			stream: Stderr,
			write:  func(s string) { os.Stderr.WriteString(s) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := os.Create(filepath.Join(t.TempDir(), "redirect.out"))
			if err != nil {
				t.Fatalf("creating redirect target: %v", err)
			}
			defer target.Close()

			saved, err := Redirect(tt.stream, target)
			if err != nil {
				t.Fatalf("Redirect failed: %v", err)
			}

			tt.write("redirected\n")

			if err := saved.Restore(); err != nil {
				t.Fatalf("Restore failed: %v", err)
			}

			data, err := os.ReadFile(target.Name())
			if err != nil {
				t.Fatalf("reading redirect target: %v", err)
			}
			if !strings.Contains(string(data), "redirected") {
				t.Errorf("Expected redirected write in target file, got %q", data)
			}
		})
	}
}

func TestStreamString(t *testing.T) {
	if got := Stdout.String(); got != "stdout" {
		t.Errorf("Expected 'stdout', got %q", got)
	}
	if got := Stderr.String(); got != "stderr" {
		t.Errorf("Expected 'stderr', got %q", got)
	}
}
