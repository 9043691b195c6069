package mockengine

import (
	"errors"
	"sync"
)

// Engine provides an in-memory stand-in for the native mc_core function
// table. It records every command it receives and serves scripted return
// codes and variable values, so the full session protocol can be exercised
// without a vendor library on disk.
type Engine struct {
	mu sync.Mutex

	initialized bool
	closed      bool

	commands        []string
	newLineCommands []string

	codes           map[string]int32
	equilibriumCode int32

	temperature float64
	vars        map[string]float64

	initAppDir   string
	initExternal bool
}

// New returns an Engine that accepts every command with code 0 and reports 0
// for every variable.
func New() *Engine {
	return &Engine{
		codes: map[string]int32{},
		vars:  map[string]float64{},
	}
}

// FailCommand scripts the return code for an exact command text. A zero code
// removes the script.
func (e *Engine) FailCommand(cmd string, code int32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code == 0 {
		delete(e.codes, cmd)
		return
	}
	e.codes[cmd] = code
}

// FailEquilibrium scripts the return code of the equilibrium solver.
func (e *Engine) FailEquilibrium(code int32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.equilibriumCode = code
}

// SetVariable scripts the value served for a named variable. Unscripted
// names read as 0, mirroring the pass-through contract of the real engine.
func (e *Engine) SetVariable(name string, value float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vars[name] = value
}

// Commands returns a copy of every command received through the primary
// entry point, in order.
func (e *Engine) Commands() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.commands))
	copy(out, e.commands)
	return out
}

// NewLineCommands returns a copy of every command received through the
// new-line entry point, in order.
func (e *Engine) NewLineCommands() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.newLineCommands))
	copy(out, e.newLineCommands)
	return out
}

// Temperature returns the last value passed to SetTemperature.
func (e *Engine) Temperature() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.temperature
}

// Initialized reports whether Initialize has been called.
func (e *Engine) Initialized() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initialized
}

// InitArgs returns the arguments of the last Initialize call.
func (e *Engine) InitArgs() (appDir string, external bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initAppDir, e.initExternal
}

// Initialize records the bootstrap call and reports success.
func (e *Engine) Initialize(appDir string, external bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.initialized = true
	e.initAppDir = appDir
	e.initExternal = external
	return true
}

// ProcessCommand records cmd and returns its scripted code, zero by default.
func (e *Engine) ProcessCommand(cmd string) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.commands = append(e.commands, cmd)
	return e.codes[cmd]
}

// ProcessCommandNewLine records cmd on the new-line channel and returns its
// scripted code.
func (e *Engine) ProcessCommandNewLine(cmd string) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.newLineCommands = append(e.newLineCommands, cmd)
	return e.codes[cmd]
}

// CalcEquilibrium returns the scripted solver code, zero by default.
func (e *Engine) CalcEquilibrium(restart bool, mode int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.equilibriumCode
}

// SetTemperature stores value and echoes the previous temperature back, the
// way the native entry point does.
func (e *Engine) SetTemperature(value float64, flag bool) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	prev := e.temperature
	e.temperature = value
	return prev
}

// GetVariable serves the scripted value for name, zero when unscripted.
func (e *Engine) GetVariable(name string) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.vars[name]
}

// Close marks the engine released. A second call fails, matching the
// idempotency contract of the real handle.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return errors.New("mockengine: already closed")
	}
	e.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (e *Engine) Closed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}
