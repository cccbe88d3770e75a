// Package console decodes captured output bytes to text, accounting for
// platforms where the console encoding is not guaranteed uniform.
package console

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
)

// Decode converts captured bytes to a string using the platform's decoding
// rules: a direct conversion where the console encoding is uniform (Unix),
// and a per-line fallback to the active console code page where different
// writers may have used different encodings (Windows).
func Decode(data []byte) string {
	return decodeWith(data, fallbackEncoding())
}

// decodeWith decodes line by line. Lines that are valid UTF-8 pass through
// untouched; the rest are decoded with fallback. A nil fallback means the
// encoding is uniform and the whole buffer converts directly.
//
// Decoding never fails: lines that defeat even the fallback pass through as
// raw bytes rather than surfacing an error.
func decodeWith(data []byte, fallback encoding.Encoding) string {
	if fallback == nil {
		return string(data)
	}

	var b strings.Builder
	b.Grow(len(data))
	for _, line := range bytes.SplitAfter(data, []byte{'\n'}) {
		if len(line) == 0 || utf8.Valid(line) {
			b.Write(line)
			continue
		}
		decoded, err := fallback.NewDecoder().Bytes(line)
		if err != nil {
			b.Write(line)
			continue
		}
		b.Write(decoded)
	}
	return b.String()
}
