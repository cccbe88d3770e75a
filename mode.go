package fdcap

import (
	"fmt"

	"github.com/spf13/cast"
)

// Mode selects which standard streams a session intercepts.
//
// When exactly one stream is captured (ModeStdout or ModeStderr), the other
// stream is not left alone: it is redirected to the platform's null device
// and silently discarded for the duration of the session.
type Mode int

const (
	// ModeBoth captures stdout and stderr interleaved. It is the zero value,
	// so an unset Config.Mode captures both streams.
	ModeBoth Mode = iota
	// ModeStdout captures stdout and discards stderr.
	ModeStdout
	// ModeStderr captures stderr and discards stdout.
	ModeStderr
	// ModeNone captures nothing and performs no descriptor manipulation.
	ModeNone
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeBoth:
		return "both"
	case ModeStdout:
		return "stdout"
	case ModeStderr:
		return "stderr"
	case ModeNone:
		return "none"
	default:
		return "unknown"
	}
}

// Cast normalizes a loosely-typed value to a Mode:
//
//   - nil means ModeBoth
//   - true means ModeBoth, false means ModeNone
//   - a Mode passes through unchanged
//   - anything string-like is matched against the lowercase mode names
//
// Unrecognized values return an error wrapping ErrInvalidMode.
func Cast(value any) (Mode, error) {
	switch v := value.(type) {
	case nil:
		return ModeBoth, nil
	case Mode:
		return v, nil
	case bool:
		if v {
			return ModeBoth, nil
		}
		return ModeNone, nil
	}

	name, err := cast.ToStringE(value)
	if err != nil {
		return ModeNone, fmt.Errorf("%w: %v", ErrInvalidMode, value)
	}
	switch name {
	case "both":
		return ModeBoth, nil
	case "stdout":
		return ModeStdout, nil
	case "stderr":
		return ModeStderr, nil
	case "none":
		return ModeNone, nil
	}
	return ModeNone, fmt.Errorf("%w: %q", ErrInvalidMode, name)
}
