package fdcap

import "errors"

// Sentinel errors returned by this package. OS-level failures during
// redirection or restoration are returned wrapped (use errors.Is/As to
// inspect them); they are never retried or swallowed, since a half-restored
// descriptor state is unsafe to continue from.
var (
	// ErrInvalidMode indicates a value that Cast could not normalize to a
	// known capture mode.
	ErrInvalidMode = errors.New("unknown capture mode")

	// ErrNotFinished indicates Output was read before the session finalized.
	// This is caller misuse, not a capture failure.
	ErrNotFinished = errors.New("capture not finished")

	// ErrAlreadyStarted indicates Start was called on a session that already
	// ran. Sessions are single-use.
	ErrAlreadyStarted = errors.New("capture already started")

	// ErrNotStarted indicates Stop was called before Start.
	ErrNotStarted = errors.New("capture not started")
)
