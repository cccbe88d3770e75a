package stdfd

// Stream identifies one of the process's standard output streams.
type Stream int

const (
	// Stdout is the process's standard output stream.
	Stdout Stream = iota
	// Stderr is the process's standard error stream.
	Stderr
)

// String returns the conventional name of the stream.
func (s Stream) String() string {
	if s == Stderr {
		return "stderr"
	}
	return "stdout"
}
