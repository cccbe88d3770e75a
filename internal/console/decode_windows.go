//go:build windows

package console

import (
	"golang.org/x/sys/windows"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// fallbackEncoding maps the active console output code page to a charmap
// encoding. Windows consoles are not guaranteed UTF-8: a subprocess may
// have written with the OEM code page while the host process wrote UTF-8,
// so the same capture can hold lines in both.
func fallbackEncoding() encoding.Encoding {
	cp, err := windows.GetConsoleOutputCP()
	if err != nil {
		return charmap.Windows1252
	}
	switch cp {
	case 437:
		return charmap.CodePage437
	case 850:
		return charmap.CodePage850
	case 852:
		return charmap.CodePage852
	case 858:
		return charmap.CodePage858
	case 866:
		return charmap.CodePage866
	case 874:
		return charmap.Windows874
	case 1250:
		return charmap.Windows1250
	case 1251:
		return charmap.Windows1251
	case 1252:
		return charmap.Windows1252
	case 1253:
		return charmap.Windows1253
	case 1254:
		return charmap.Windows1254
	case 1255:
		return charmap.Windows1255
	case 1256:
		return charmap.Windows1256
	case 1257:
		return charmap.Windows1257
	case 1258:
		return charmap.Windows1258
	case 65001:
		// UTF-8 console: nothing to fall back to.
		return nil
	default:
		return charmap.Windows1252
	}
}
