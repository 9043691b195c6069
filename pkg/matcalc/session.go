package matcalc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/matsci/matcalc-go/internal/bindings"
	"github.com/matsci/matcalc-go/pkg/matcalc/logging"
	"github.com/matsci/matcalc-go/pkg/matcalc/stdguard"
)

// Session owns the lifecycle of a loaded mc_core library and sequences the
// command protocol on top of it. A session starts Uninitialized; Init moves
// it to Initialized, and every command or query on an Uninitialized session
// fails fast with ErrNotInitialized instead of reaching the native engine.
//
// Sessions are not safe for concurrent use, and at most one should exist per
// process: the working-directory change made by Open is process-wide state.
type Session struct {
	cfg     Config
	eng     Engine
	appDir  string
	prevDir string
	log     logging.Logger

	initialized bool
	closed      bool
}

// Open resolves the application directory, changes the process working
// directory into it, locates the mc_core library (or uses the configured
// override), and loads it. The chdir is deliberate: the engine resolves
// databases and auxiliary files relative to its home directory at load time.
// Close restores the previous working directory.
//
// Resolution and load failures are fatal and surfaced immediately; there is
// no retry.
func Open(cfg Config) (*Session, error) {
	appDir, err := filepath.Abs(cfg.appDir())
	if err != nil {
		return nil, fmt.Errorf("matcalc: resolve application directory: %w", err)
	}
	info, err := os.Stat(appDir)
	if err != nil {
		return nil, fmt.Errorf("matcalc: application directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("matcalc: application directory %q is not a directory", appDir)
	}

	prevDir, err := os.Getwd()
	if err != nil {
		prevDir = ""
	}
	if err := os.Chdir(appDir); err != nil {
		return nil, fmt.Errorf("matcalc: enter application directory: %w", err)
	}

	restoreDir := func() {
		if prevDir != "" {
			_ = os.Chdir(prevDir)
		}
	}

	libPath := cfg.LibraryFile
	if libPath == "" {
		libPath, err = bindings.LocateCoreLibrary(appDir)
		if err != nil {
			restoreDir()
			return nil, err
		}
	}

	lib, err := bindings.Load(libPath)
	if err != nil {
		restoreDir()
		return nil, err
	}

	s := NewSession(lib, cfg)
	s.appDir = appDir
	s.prevDir = prevDir
	s.log.Debug(context.Background(), "mc_core loaded",
		"library", libPath, "app_dir", appDir)
	return s, nil
}

// NewSession wraps an already-constructed engine without touching the
// filesystem. It exists for tests and for callers that manage library
// loading themselves; most callers want Open.
func NewSession(eng Engine, cfg Config) *Session {
	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}
	appDir := cfg.appDir()
	if abs, err := filepath.Abs(appDir); err == nil {
		appDir = abs
	}
	return &Session{cfg: cfg, eng: eng, appDir: appDir, log: log}
}

// AppDir returns the resolved application directory.
func (s *Session) AppDir() string { return s.appDir }

// Init bootstraps the engine: it calls the native initialization entry point
// with the application directory, then issues the two fixed setup commands
// (set-working-directory, set-application-directory) through the command
// channel. A bootstrap command failure propagates as a *CommandError and
// leaves the session Uninitialized.
//
// The native initialization routine returns a boolean with no further
// diagnostics; it is logged and otherwise ignored, matching the engine's
// documented calling convention.
func (s *Session) Init() error {
	if s.closed {
		return ErrSessionClosed
	}
	if s.initialized {
		return ErrAlreadyInitialized
	}

	var ok bool
	s.native(func() { ok = s.eng.Initialize(s.appDir, true) })
	s.log.Debug(context.Background(), "engine initialized", "app_dir", s.appDir, "ok", ok)

	if err := s.command("set-working-directory ./"); err != nil {
		return err
	}
	if err := s.command("set-application-directory " + s.appDir); err != nil {
		return err
	}

	s.initialized = true
	return nil
}

// Close restores the working directory saved by Open and releases the native
// library handle. A second call returns ErrSessionClosed. There is no
// rollback of native-side state; whatever the engine held is abandoned.
func (s *Session) Close() error {
	if s.closed {
		return ErrSessionClosed
	}
	s.closed = true
	if s.prevDir != "" {
		_ = os.Chdir(s.prevDir)
	}
	return s.eng.Close()
}

func (s *Session) ready() error {
	if s.closed {
		return ErrSessionClosed
	}
	if !s.initialized {
		return ErrNotInitialized
	}
	return nil
}

// native runs one foreign call, optionally inside a stdout-suppression
// scope. Suppression failures never mask the call itself.
func (s *Session) native(fn func()) {
	if !s.cfg.SuppressEngineOutput {
		fn()
		return
	}
	restore, err := stdguard.Suppress()
	if err != nil {
		s.log.Warn(context.Background(), "stdout suppression unavailable", "err", err)
		fn()
		return
	}
	defer restore()
	fn()
}
