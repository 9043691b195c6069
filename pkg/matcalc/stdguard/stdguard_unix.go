//go:build linux || darwin

package stdguard

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const stdoutFd = 1

// Suppress redirects file descriptor 1 to the null device and returns a
// restore function that reinstates the saved descriptor. The restore
// function is idempotent and must be called exactly off every exit path;
// prefer While unless the scope genuinely cannot be expressed as a closure.
func Suppress() (restore func(), err error) {
	saved, err := unix.Dup(stdoutFd)
	if err != nil {
		return nil, fmt.Errorf("%w: dup stdout: %v", ErrUnavailable, err)
	}
	unix.CloseOnExec(saved)

	null, err := unix.Open(os.DevNull, unix.O_WRONLY, 0)
	if err != nil {
		_ = unix.Close(saved)
		return nil, fmt.Errorf("%w: open %s: %v", ErrUnavailable, os.DevNull, err)
	}
	if err := dupTo(null, stdoutFd); err != nil {
		_ = unix.Close(null)
		_ = unix.Close(saved)
		return nil, fmt.Errorf("%w: redirect stdout: %v", ErrUnavailable, err)
	}
	_ = unix.Close(null)

	restored := false
	return func() {
		if restored {
			return
		}
		restored = true
		_ = dupTo(saved, stdoutFd)
		_ = unix.Close(saved)
	}, nil
}
