package bindings

import "errors"

// Names of the mc_core entry points bound by Load. The native library exports
// these symbols with C linkage; the signatures are fixed by the vendor API.
const (
	symInitialize       = "MCC_InitializeExternalConstChar"
	symProcessCommand   = "MCCOL_ProcessCommandLineInput"
	symProcessNewColine = "MCCOL_ProcessCommandLineInputNewColine"
	symCalcEquilibrium  = "MCC_CalcEquilibrium"
	symSetTemperature   = "MCC_SetTemperature"
	symGetVariable      = "MCC_GetMCVariable"
)

// coreLibraryBaseName is the stem of the vendor library file name, before the
// optional "lib" prefix and the platform suffix.
const coreLibraryBaseName = "mc_core"

var (
	// ErrNotBuilt reports that runtime library loading is not implemented
	// for the current platform, so no native calls can be made.
	ErrNotBuilt = errors.New("matcalc/internal/bindings: native loading not built for this platform")

	// ErrUnsupportedPlatform reports that the current operating system has
	// no known shared-library suffix for the mc_core file.
	ErrUnsupportedPlatform = errors.New("matcalc/internal/bindings: unsupported platform")

	// ErrClosed reports a call through a library handle that has already
	// been released.
	ErrClosed = errors.New("matcalc/internal/bindings: library closed")
)
