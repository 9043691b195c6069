package matcalc

// Engine is the native function table a Session drives. The production
// implementation is the loaded mc_core library from internal/bindings; tests
// substitute mockengine.Engine. The six methods mirror the vendor entry
// points bit for bit, including the fixed flag arguments.
type Engine interface {
	Initialize(appDir string, external bool) bool
	ProcessCommand(cmd string) int32
	ProcessCommandNewLine(cmd string) int32
	CalcEquilibrium(restart bool, mode int32) int32
	SetTemperature(value float64, flag bool) float64
	GetVariable(name string) float64
	Close() error
}
