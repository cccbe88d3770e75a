//go:build unix

package console

import "golang.org/x/text/encoding"

// Unix consoles are uniformly UTF-8; there is no fallback encoding.
func fallbackEncoding() encoding.Encoding {
	return nil
}
