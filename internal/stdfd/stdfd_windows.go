//go:build windows

package stdfd

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// Saved holds the pre-redirection state of one standard stream: the console
// slot's previous handle and the previous os.Std* stream object, which the
// handle substitution invalidates.
type Saved struct {
	stream Stream
	slot   uint32
	handle windows.Handle
	file   *os.File
}

// Redirect substitutes the console slot for stream with target's handle and
// returns the state needed to undo it. Child processes started during the
// redirection inherit the substituted handle.
func Redirect(stream Stream, target *os.File) (*Saved, error) {
	slot, std := console(stream)

	prev, err := windows.GetStdHandle(slot)
	if err != nil {
		return nil, fmt.Errorf("get %s handle: %w", stream, err)
	}

	if err := windows.SetStdHandle(slot, windows.Handle(target.Fd())); err != nil {
		return nil, fmt.Errorf("redirect %s: %w", stream, err)
	}

	// The old stream object now wraps a dead handle. Rebind the package
	// stream to the target so in-process writes follow the redirection.
	saved := &Saved{stream: stream, slot: slot, handle: prev, file: *std}
	*std = target
	return saved, nil
}

// Restore reinstates the saved console handle and stream object. Call
// exactly once.
func (s *Saved) Restore() error {
	_, std := console(s.stream)
	if err := windows.SetStdHandle(s.slot, s.handle); err != nil {
		return fmt.Errorf("restore %s: %w", s.stream, err)
	}
	*std = s.file
	return nil
}

func console(stream Stream) (uint32, **os.File) {
	if stream == Stderr {
		return windows.STD_ERROR_HANDLE, &os.Stderr
	}
	return windows.STD_OUTPUT_HANDLE, &os.Stdout
}
