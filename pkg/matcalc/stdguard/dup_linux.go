package stdguard

import "golang.org/x/sys/unix"

// dup2 is not available on every linux architecture; dup3 is.
func dupTo(oldfd, newfd int) error {
	return unix.Dup3(oldfd, newfd, 0)
}
