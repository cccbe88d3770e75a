// Package fdcap captures a process's standard output and standard error
// streams at the operating-system file-descriptor level.
//
// Redirecting the real descriptors (rather than swapping the os.Stdout
// variable) means writes from child processes and native libraries are
// captured too: anything spawned during the scope inherits the redirected
// descriptors automatically. Captured bytes are buffered in a temporary
// backing file and returned as text once the session finalizes.
//
// # Main Types
//
//   - [Mode]: selects what to intercept — stdout, stderr, both, or nothing
//   - [Cast]: normalizes loose caller input (nil, bool, string) to a Mode
//   - [Session]: one Start/Stop capture cycle with exact stream restoration
//   - [Run], [RunWith]: scoped capture that finalizes on every exit path
//
// # Basic Usage
//
//	out, err := fdcap.Run(fdcap.ModeBoth, func() error {
//	    fmt.Println("from the host process")
//	    return exec.Command("sh", "-c", "echo from a child").Run()
//	})
//
// # Constraints
//
// Descriptor redirection is process-global. Only one session may be active
// at a time; nested or overlapping captures on the same descriptors are
// unsupported and produce undefined restoration order. Goroutines writing
// to stdout or stderr while a session is active have their output captured
// or discarded according to the active mode — callers needing isolation
// must serialize capture scopes themselves. The session performs no
// locking: it is a single-threaded acquire/release protocol around global
// process state.
package fdcap
