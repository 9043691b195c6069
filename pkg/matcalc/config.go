package matcalc

import (
	"os"

	"github.com/matsci/matcalc-go/pkg/matcalc/logging"
)

// EnvAppDir is the environment variable consulted when Config.AppDir is
// empty.
const EnvAppDir = "MATCALC_DIR"

// Config expresses the knobs required to spin up a session against the
// native engine.
type Config struct {
	// AppDir is the MatCalc application directory: the root under which
	// the mc_core library is searched and which becomes the process
	// working directory for the session. Empty falls back to the
	// MATCALC_DIR environment variable, then to the current directory.
	AppDir string

	// LibraryFile, when set, skips library discovery and loads exactly
	// this file.
	LibraryFile string

	// Logger receives debug records for every forwarded command and its
	// raw return code. Nil disables logging.
	Logger logging.Logger

	// SuppressEngineOutput redirects the process's stdout to the null
	// device for the duration of each native call. The engine writes
	// progress chatter directly to file descriptor 1; this silences it
	// without touching the wrapper's own error reporting.
	SuppressEngineOutput bool
}

func (c Config) appDir() string {
	if c.AppDir != "" {
		return c.AppDir
	}
	if dir := os.Getenv(EnvAppDir); dir != "" {
		return dir
	}
	return "."
}
