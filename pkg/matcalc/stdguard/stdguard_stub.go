//go:build !linux && !darwin

package stdguard

// Suppress has no descriptor-level implementation on this platform. The
// no-op restore keeps caller code uniform.
func Suppress() (restore func(), err error) {
	return func() {}, ErrUnavailable
}
