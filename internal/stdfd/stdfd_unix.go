//go:build unix

package stdfd

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Saved holds the pre-redirection state of one standard stream: the live
// descriptor number and a duplicate of whatever it pointed at.
type Saved struct {
	stream Stream
	fd     int
	dup    int
}

// Redirect points the live descriptor for stream at target and returns the
// state needed to undo it. The saved duplicate is marked close-on-exec so
// child processes spawned during the capture do not inherit it.
func Redirect(stream Stream, target *os.File) (*Saved, error) {
	fd := liveFd(stream)

	dup, err := unix.Dup(fd)
	if err != nil {
		return nil, fmt.Errorf("dup %s: %w", stream, err)
	}
	unix.CloseOnExec(dup)

	if err := dupTo(int(target.Fd()), fd); err != nil {
		unix.Close(dup)
		return nil, fmt.Errorf("redirect %s: %w", stream, err)
	}

	return &Saved{stream: stream, fd: fd, dup: dup}, nil
}

// Restore points the live descriptor back at the saved duplicate and closes
// the duplicate. Call exactly once.
func (s *Saved) Restore() error {
	if err := dupTo(s.dup, s.fd); err != nil {
		unix.Close(s.dup)
		return fmt.Errorf("restore %s: %w", s.stream, err)
	}
	if err := unix.Close(s.dup); err != nil {
		return fmt.Errorf("close saved %s: %w", s.stream, err)
	}
	return nil
}

func liveFd(stream Stream) int {
	if stream == Stderr {
		return int(os.Stderr.Fd())
	}
	return int(os.Stdout.Fd())
}
