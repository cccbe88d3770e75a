package fdcap

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Iron-Ham/fdcap/internal/console"
	"github.com/Iron-Ham/fdcap/internal/stdfd"
)

// Config holds the settings for a capture session.
type Config struct {
	// Mode selects which streams to intercept. The zero value is ModeBoth.
	Mode Mode

	// Stdin, when non-nil, substitutes the process input stream (os.Stdin)
	// with the given text for the duration of the session. The prior stream
	// object is reinstated on finalization. Ignored when Mode is ModeNone.
	Stdin *string

	// Logger receives debug events for activation and finalization.
	// Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns a configuration capturing the given mode with no
// synthetic input.
func DefaultConfig(mode Mode) Config {
	return Config{Mode: mode}
}

// Session captures the process's standard output and error streams at the
// file-descriptor level for one Start/Stop cycle.
//
// A session is single-use: Start activates the redirection, Stop restores
// the prior descriptors exactly once and materializes the captured text,
// and Output returns it. Prefer [Run] or [RunWith], which guarantee Stop
// runs on every exit path; direct construction bypasses that guarantee.
//
// With ModeNone the session is inert: the streams are flushed but no
// descriptor is touched, and Output always reports empty text.
type Session struct {
	cfg Config
	log *slog.Logger

	started  bool
	finished bool

	backing   *os.File
	devnull   *os.File
	savedIn   *os.File
	stdinPipe *os.File
	savedOut  *stdfd.Saved
	savedErr  *stdfd.Saved

	output string
}

// NewSession creates a session for the given configuration. The session
// does nothing until Start is called.
func NewSession(cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{cfg: cfg, log: logger}
}

// Mode returns the mode this session was configured with.
func (s *Session) Mode() Mode {
	return s.cfg.Mode
}

// Start activates the capture: it flushes the standard streams, substitutes
// the input stream if configured, and redirects the live stdout/stderr
// descriptors to the backing store or the null sink according to the mode.
//
// If any step fails, the steps that already succeeded are rolled back in
// reverse order before the error is returned, so a failed Start never
// leaves the process with broken standard streams.
func (s *Session) Start() error {
	if s.started || s.finished {
		return ErrAlreadyStarted
	}
	s.started = true

	// Flush first: buffered bytes written before the dup would otherwise
	// surface inside the capture, or be lost with it.
	flushStd()

	if s.cfg.Mode == ModeNone {
		return nil
	}

	if err := s.activate(); err != nil {
		s.rollback()
		return err
	}

	s.log.Debug("capture active", "mode", s.cfg.Mode.String())
	return nil
}

func (s *Session) activate() error {
	if s.cfg.Stdin != nil {
		r, w, err := os.Pipe()
		if err != nil {
			return fmt.Errorf("stdin pipe: %w", err)
		}
		input := *s.cfg.Stdin
		go func() {
			_, _ = io.WriteString(w, input)
			w.Close()
		}()
		s.savedIn = os.Stdin
		s.stdinPipe = r
		os.Stdin = r
	}

	// When only one stream is captured the other is not left alone: it is
	// pointed at the null device and discarded for the session's duration.
	if s.cfg.Mode == ModeStdout || s.cfg.Mode == ModeStderr {
		devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		if err != nil {
			return fmt.Errorf("open null sink: %w", err)
		}
		s.devnull = devnull
	}

	// One shared backing file per session; both captured streams land in it
	// so interleaving is preserved. A file rather than a pipe: pipes fill
	// and block the writer once output exceeds the kernel buffer.
	backing, err := os.CreateTemp("", "fdcap-*")
	if err != nil {
		return fmt.Errorf("create backing store: %w", err)
	}
	s.backing = backing

	outTarget := backing
	if s.cfg.Mode == ModeStderr {
		outTarget = s.devnull
	}
	savedOut, err := stdfd.Redirect(stdfd.Stdout, outTarget)
	if err != nil {
		return err
	}
	s.savedOut = savedOut

	errTarget := backing
	if s.cfg.Mode == ModeStdout {
		errTarget = s.devnull
	}
	savedErr, err := stdfd.Redirect(stdfd.Stderr, errTarget)
	if err != nil {
		return err
	}
	s.savedErr = savedErr

	return nil
}

// rollback undoes whatever part of activation succeeded, in reverse order.
// Errors here are logged, not returned: the caller already has the
// activation error, which is the one that matters.
func (s *Session) rollback() {
	if s.savedErr != nil {
		if err := s.savedErr.Restore(); err != nil {
			s.log.Warn("rolling back stderr redirection", "error", err)
		}
		s.savedErr = nil
	}
	if s.savedOut != nil {
		if err := s.savedOut.Restore(); err != nil {
			s.log.Warn("rolling back stdout redirection", "error", err)
		}
		s.savedOut = nil
	}
	s.discardBacking()
	if s.devnull != nil {
		s.devnull.Close()
		s.devnull = nil
	}
	s.restoreStdin()
}

// Stop finalizes the capture: it reinstates the input stream, restores the
// stdout/stderr descriptors from their saved duplicates, reads back and
// decodes the backing store, and deletes it. After Stop returns, Output
// yields the captured text and the process streams behave exactly as they
// did before Start.
//
// Stop is idempotent once the session has finished; calling it before
// Start returns ErrNotStarted.
func (s *Session) Stop() error {
	if !s.started {
		return ErrNotStarted
	}
	if s.finished {
		return nil
	}
	s.finished = true

	if s.cfg.Mode == ModeNone {
		flushStd()
		return nil
	}

	s.restoreStdin()

	if s.devnull != nil {
		s.devnull.Close()
		s.devnull = nil
	}

	// Push pending bytes into the backing store before the descriptors are
	// repointed; after restoration the store can no longer receive them.
	flushStd()

	var errs []error
	if s.savedOut != nil {
		if err := s.savedOut.Restore(); err != nil {
			errs = append(errs, err)
		}
		s.savedOut = nil
	}
	if s.savedErr != nil {
		if err := s.savedErr.Restore(); err != nil {
			errs = append(errs, err)
		}
		s.savedErr = nil
	}

	if s.backing != nil {
		text, err := s.readBacking()
		if err != nil {
			errs = append(errs, err)
		}
		s.output = text
	}

	s.log.Debug("capture finished",
		"mode", s.cfg.Mode.String(),
		"bytes", len(s.output),
	)
	return errors.Join(errs...)
}

// Output returns the captured text. Before the session finalizes it returns
// ErrNotFinished for every mode except ModeNone, which captures nothing and
// always reports an empty string.
func (s *Session) Output() (string, error) {
	if s.cfg.Mode != ModeNone && !s.finished {
		return "", ErrNotFinished
	}
	return s.output, nil
}

// String implements fmt.Stringer. It returns the same text as Output, or
// the empty string while the session is still capturing.
func (s *Session) String() string {
	out, err := s.Output()
	if err != nil {
		return ""
	}
	return out
}

// readBacking rewinds the backing store, reads it fully, and decodes the
// bytes to text. The store is closed and deleted regardless of outcome.
func (s *Session) readBacking() (string, error) {
	defer s.discardBacking()

	if _, err := s.backing.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind backing store: %w", err)
	}
	data, err := io.ReadAll(s.backing)
	if err != nil {
		return "", fmt.Errorf("read backing store: %w", err)
	}
	return console.Decode(data), nil
}

func (s *Session) discardBacking() {
	if s.backing == nil {
		return
	}
	name := s.backing.Name()
	s.backing.Close()
	if err := os.Remove(name); err != nil {
		s.log.Warn("removing capture backing store", "path", name, "error", err)
	}
	s.backing = nil
}

func (s *Session) restoreStdin() {
	if s.savedIn == nil {
		return
	}
	os.Stdin = s.savedIn
	s.savedIn = nil
	// Closing the read end unblocks the feeder goroutine if the synthetic
	// input was never fully consumed.
	s.stdinPipe.Close()
	s.stdinPipe = nil
}

// flushStd pushes pending writes on the standard streams. Terminals reject
// Sync, so failures are ignored.
func flushStd() {
	_ = os.Stdout.Sync()
	_ = os.Stderr.Sync()
}

// Run captures the given mode for the duration of fn and returns the
// captured text. See RunWith.
func Run(mode Mode, fn func() error) (string, error) {
	return RunWith(DefaultConfig(mode), fn)
}

// RunWith opens a capture session, invokes fn, and finalizes the session on
// every exit path — normal return, error, or panic — so the process streams
// are always restored before control leaves the scope. It returns the
// captured text together with fn's error; when fn succeeds, any
// finalization error is returned instead.
func RunWith(cfg Config, fn func() error) (string, error) {
	s := NewSession(cfg)
	if err := s.Start(); err != nil {
		return "", err
	}

	var stopErr error
	fnErr := func() error {
		defer func() {
			stopErr = s.Stop()
		}()
		return fn()
	}()

	out, _ := s.Output()
	if fnErr != nil {
		return out, fnErr
	}
	return out, stopErr
}
