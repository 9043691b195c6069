//go:build linux || darwin

package bindings

import "github.com/ebitengine/purego"

// RTLD_GLOBAL matters here: mc_core resolves symbols across its own plugin
// modules after load.
func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func closeLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
}
