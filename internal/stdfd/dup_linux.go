//go:build linux

package stdfd

import "golang.org/x/sys/unix"

// dupTo makes newfd refer to the same open file as oldfd. Linux has no dup2
// syscall on newer architectures (arm64, riscv64), so use dup3.
func dupTo(oldfd, newfd int) error {
	return unix.Dup3(oldfd, newfd, 0)
}
