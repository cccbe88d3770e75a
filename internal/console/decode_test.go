package console

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestDecodeWithUniformEncoding(t *testing.T) {
	got := decodeWith([]byte("hello\nworld\n"), nil)
	if got != "hello\nworld\n" {
		t.Errorf("Expected passthrough, got %q", got)
	}
}

func TestDecodeWithFallback(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "valid utf-8 passes through",
			input: []byte("caf\xc3\xa9\n"),
			want:  "café\n",
		},
		{
			name:  "invalid line decoded with fallback",
			input: []byte("caf\xe9\n"),
			want:  "café\n",
		},
		{
			name:  "mixed encodings decoded per line",
			input: []byte("caf\xc3\xa9\ncaf\xe9\nplain\n"),
			want:  "café\ncafé\nplain\n",
		},
		{
			name:  "unterminated final line",
			input: []byte("ok\ncaf\xe9"),
			want:  "ok\ncafé",
		},
		{
			name:  "empty input",
			input: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeWith(tt.input, charmap.Windows1252)
			if got != tt.want {
				t.Errorf("decodeWith(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	if got := Decode([]byte("hello\n")); got != "hello\n" {
		t.Errorf("Decode = %q, want %q", got, "hello\n")
	}
}
