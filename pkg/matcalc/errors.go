package matcalc

import (
	"errors"
	"fmt"

	"github.com/matsci/matcalc-go/internal/bindings"
)

var (
	// ErrNotInitialized indicates a command or query was issued before a
	// successful Init.
	ErrNotInitialized = errors.New("matcalc: session not initialized")

	// ErrAlreadyInitialized indicates Init was called twice on one session.
	ErrAlreadyInitialized = errors.New("matcalc: session already initialized")

	// ErrSessionClosed indicates the session has been closed.
	ErrSessionClosed = errors.New("matcalc: session closed")

	// ErrNotBuilt indicates the current platform has no runtime library
	// loading support.
	ErrNotBuilt = bindings.ErrNotBuilt

	// ErrUnsupportedPlatform indicates the current operating system has no
	// known shared-library suffix for mc_core.
	ErrUnsupportedPlatform = bindings.ErrUnsupportedPlatform
)

// CommandError reports a nonzero return code from the engine's command
// interpreter. Codes are opaque to the wrapper; only zero versus nonzero is
// meaningful, so the raw code is surfaced for diagnostics and nothing more.
type CommandError struct {
	Code int32  // raw native return code
	Cmd  string // the command text that failed
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("matcalc: err nr %d while executing %q", e.Code, e.Cmd)
}

// EquilibriumError reports a nonzero return code from the equilibrium solver.
type EquilibriumError struct {
	Code int32
}

func (e *EquilibriumError) Error() string {
	return fmt.Sprintf("matcalc: err nr %d while calculating equilibrium", e.Code)
}
