//go:build linux

package fdcap

import (
	"fmt"
	"io"
	"os"
	"testing"
)

// Every descriptor duplicated during activation must be restored or closed
// exactly once, so N sequential scopes leave the process's descriptor table
// at its baseline.
func TestNoDescriptorLeak(t *testing.T) {
	baseline := openDescriptors(t)

	input := "input\n"
	modes := []Mode{ModeBoth, ModeStdout, ModeStderr, ModeNone}
	for range 5 {
		for _, mode := range modes {
			_, err := RunWith(Config{Mode: mode, Stdin: &input}, func() error {
				if mode == ModeNone {
					// Nothing is redirected; writing would hit the real
					// streams.
					return nil
				}
				fmt.Println("leak check")
				// Drain the synthetic input so the feeder pipe is done
				// before the scope closes.
				_, _ = io.ReadAll(os.Stdin)
				return nil
			})
			if err != nil {
				t.Fatalf("RunWith(%v) failed: %v", mode, err)
			}
		}
	}

	if got := openDescriptors(t); got != baseline {
		t.Errorf("Descriptor count changed: baseline %d, after %d", baseline, got)
	}
}

func openDescriptors(t *testing.T) int {
	t.Helper()

	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Fatalf("reading /proc/self/fd: %v", err)
	}
	return len(entries)
}
