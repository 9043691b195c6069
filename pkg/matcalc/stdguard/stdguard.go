package stdguard

import "errors"

// ErrUnavailable reports that standard output cannot be redirected in this
// environment. Callers are expected to proceed without suppression.
var ErrUnavailable = errors.New("stdguard: stdout suppression unavailable")

// While runs fn with standard output suppressed and restores it before
// returning, even when fn panics. When suppression is unavailable fn still
// runs, unsuppressed.
func While(fn func() error) error {
	restore, err := Suppress()
	if err != nil {
		return fn()
	}
	defer restore()
	return fn()
}
