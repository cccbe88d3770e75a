//go:build unix

package fdcap

import (
	"fmt"
	"os"
	"os/exec"
	"testing"
)

// Child processes handed the standard streams write straight to the
// redirected descriptors, so their output lands in the capture interleaved
// with the host's writes.
func TestSubprocessWritesCaptured(t *testing.T) {
	out, err := Run(ModeBoth, func() error {
		fmt.Println("1")
		fmt.Fprintln(os.Stderr, "2")
		if err := run(t, "echo 3"); err != nil {
			return err
		}
		return run(t, "echo 4 >&2")
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out != "1\n2\n3\n4\n" {
		t.Errorf("Expected %q, got %q", "1\n2\n3\n4\n", out)
	}
}

func TestSubprocessStderrDiscarded(t *testing.T) {
	out, err := Run(ModeStdout, func() error {
		if err := run(t, "echo kept"); err != nil {
			return err
		}
		return run(t, "echo dropped >&2")
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out != "kept\n" {
		t.Errorf("Expected only child stdout %q, got %q", "kept\n", out)
	}
}

// run executes a shell snippet wired to the process's standard streams.
func run(t *testing.T, script string) error {
	t.Helper()

	cmd := exec.Command("sh", "-c", script)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
