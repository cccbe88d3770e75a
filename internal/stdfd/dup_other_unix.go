//go:build unix && !linux

package stdfd

import "golang.org/x/sys/unix"

// dupTo makes newfd refer to the same open file as oldfd.
func dupTo(oldfd, newfd int) error {
	return unix.Dup2(oldfd, newfd)
}
