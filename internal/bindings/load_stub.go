//go:build !linux && !darwin && !windows

package bindings

// Stub implementations for platforms without runtime library loading. These
// let the package compile; Load always fails with ErrNotBuilt.

type Lib struct{}

func Load(string) (*Lib, error) { return nil, ErrNotBuilt }

func (l *Lib) Path() string { return "" }

func (l *Lib) Initialize(string, bool) bool { return false }

func (l *Lib) ProcessCommand(string) int32 { return -1 }

func (l *Lib) ProcessCommandNewLine(string) int32 { return -1 }

func (l *Lib) CalcEquilibrium(bool, int32) int32 { return -1 }

func (l *Lib) SetTemperature(float64, bool) float64 { return 0 }

func (l *Lib) GetVariable(string) float64 { return 0 }

func (l *Lib) Close() error { return ErrNotBuilt }
