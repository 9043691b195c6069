package matcalc

import "github.com/matsci/matcalc-go/internal/bindings"

// LocateCoreLibrary searches dir for the mc_core shared library and returns
// the absolute path of the file Open would load: names match an optional
// "lib" prefix, the mc_core stem, and the platform suffix (.so, .dylib, or
// .dll); the largest matching file wins. It fails with an error naming dir
// when nothing matches, and with ErrUnsupportedPlatform on operating systems
// the vendor does not ship for.
func LocateCoreLibrary(dir string) (string, error) {
	return bindings.LocateCoreLibrary(dir)
}
