//go:build linux || darwin || windows

package bindings

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Lib is an open handle to the mc_core library with all six entry points
// resolved. The zero value is unusable; obtain one through Load.
type Lib struct {
	path   string
	handle uintptr
	closed bool

	initialize      func(appDir string, external bool) bool
	processCommand  func(cmd string) int32
	processNewLine  func(cmd string) int32
	calcEquilibrium func(restart bool, mode int32) int32
	setTemperature  func(value float64, flag bool) float64
	getVariable     func(name string) float64
}

// Load opens the shared library at path and resolves the six mc_core entry
// points. Every symbol must be present; a missing symbol fails the load and
// releases the handle.
func Load(path string) (*Lib, error) {
	handle, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", path, err)
	}

	l := &Lib{path: path, handle: handle}
	symbols := []struct {
		name string
		fptr any
	}{
		{symInitialize, &l.initialize},
		{symProcessCommand, &l.processCommand},
		{symProcessNewColine, &l.processNewLine},
		{symCalcEquilibrium, &l.calcEquilibrium},
		{symSetTemperature, &l.setTemperature},
		{symGetVariable, &l.getVariable},
	}
	for _, b := range symbols {
		if _, err := lookupSymbol(handle, b.name); err != nil {
			_ = closeLibrary(handle)
			return nil, fmt.Errorf("load %q: symbol %s: %w", path, b.name, err)
		}
		purego.RegisterLibFunc(b.fptr, handle, b.name)
	}
	return l, nil
}

// Path returns the file the library was loaded from.
func (l *Lib) Path() string { return l.path }

// Initialize calls MCC_InitializeExternalConstChar. The native return value
// reports bootstrap success but carries no further diagnostics.
func (l *Lib) Initialize(appDir string, external bool) bool {
	return l.initialize(appDir, external)
}

// ProcessCommand submits one command line to the engine's interpreter and
// returns the raw native code, zero on success.
func (l *Lib) ProcessCommand(cmd string) int32 {
	return l.processCommand(cmd)
}

// ProcessCommandNewLine is ProcessCommand through the entry point that starts
// a fresh input line in the engine's console.
func (l *Lib) ProcessCommandNewLine(cmd string) int32 {
	return l.processNewLine(cmd)
}

// CalcEquilibrium runs the engine's equilibrium solver and returns the raw
// native code, zero on success.
func (l *Lib) CalcEquilibrium(restart bool, mode int32) int32 {
	return l.calcEquilibrium(restart, mode)
}

// SetTemperature sets the system temperature and returns whatever value the
// engine echoes back.
func (l *Lib) SetTemperature(value float64, flag bool) float64 {
	return l.setTemperature(value, flag)
}

// GetVariable reads a named engine state variable. The engine's behavior for
// unknown names is unspecified and passed through as-is.
func (l *Lib) GetVariable(name string) float64 {
	return l.getVariable(name)
}

// Close releases the native handle. A second call returns ErrClosed.
func (l *Lib) Close() error {
	if l.closed {
		return ErrClosed
	}
	l.closed = true
	return closeLibrary(l.handle)
}
