package matcalc

import (
	"context"
	"strconv"
)

// ExecuteCommand submits one command line to the engine's interpreter. The
// engine is the sole authority on command syntax; the wrapper only encodes
// the text and interprets the return code. Nonzero codes surface as a
// *CommandError carrying the code and the command text. Success is silent.
func (s *Session) ExecuteCommand(cmd string) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.command(cmd)
}

// command forwards cmd without the initialized-state check. Init uses it
// directly for the bootstrap commands, which by definition run before the
// session is Initialized.
func (s *Session) command(cmd string) error {
	var code int32
	s.native(func() { code = s.eng.ProcessCommand(cmd) })
	s.log.Debug(context.Background(), "command executed", "cmd", cmd, "code", code)
	if code != 0 {
		return &CommandError{Code: code, Cmd: cmd}
	}
	return nil
}

// ExecuteCommandNewLine is ExecuteCommand routed through the entry point
// that starts a fresh input line in the engine's console context. Error
// semantics are identical.
func (s *Session) ExecuteCommandNewLine(cmd string) error {
	if err := s.ready(); err != nil {
		return err
	}
	var code int32
	s.native(func() { code = s.eng.ProcessCommandNewLine(cmd) })
	s.log.Debug(context.Background(), "command executed", "cmd", cmd, "code", code, "new_line", true)
	if code != 0 {
		return &CommandError{Code: code, Cmd: cmd}
	}
	return nil
}

// CalcEquilibrium runs the engine's equilibrium solver with the fixed
// arguments the wrapper always uses (no restart, mode 0). A nonzero code
// surfaces as an *EquilibriumError.
func (s *Session) CalcEquilibrium() error {
	if err := s.ready(); err != nil {
		return err
	}
	var code int32
	s.native(func() { code = s.eng.CalcEquilibrium(false, 0) })
	s.log.Debug(context.Background(), "equilibrium calculated", "code", code)
	if code != 0 {
		return &EquilibriumError{Code: code}
	}
	return nil
}

// SetTemperatureKelvin sets the system temperature. The engine echoes a
// value back, which the wrapper discards: this operation has no observable
// failure mode beyond session state. Whether the engine signals problems
// through a side channel is unknown; nothing is checked here.
func (s *Session) SetTemperatureKelvin(kelvin float64) error {
	if err := s.ready(); err != nil {
		return err
	}
	var echoed float64
	s.native(func() { echoed = s.eng.SetTemperature(kelvin, false) })
	s.log.Debug(context.Background(), "temperature set", "kelvin", kelvin, "echoed", echoed)
	return nil
}

// SetElementMoleFraction sets the mole fraction of an element through the
// enter-composition command. Error semantics follow ExecuteCommand.
func (s *Session) SetElementMoleFraction(symbol string, value float64) error {
	return s.enterComposition("X", symbol, value)
}

// SetElementWeightFraction sets the weight fraction of an element.
func (s *Session) SetElementWeightFraction(symbol string, value float64) error {
	return s.enterComposition("W", symbol, value)
}

// SetElementSiteFraction sets the site fraction of an element.
func (s *Session) SetElementSiteFraction(symbol string, value float64) error {
	return s.enterComposition("U", symbol, value)
}

func (s *Session) enterComposition(mode, symbol string, value float64) error {
	return s.ExecuteCommand("enter-composition " + mode + " " + symbol + "=" + formatFraction(value))
}

// formatFraction renders composition values with %g semantics, the format
// the engine's command parser was built against.
func formatFraction(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// GetVariable reads a named scalar state variable (for example "F$FCC_A1" or
// "MU$C") from the engine. The name is not validated and the result is
// passed through verbatim; the engine's behavior for unknown names is
// unspecified, and no error is distinguishable from a legitimate value.
func (s *Session) GetVariable(name string) (float64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	var value float64
	s.native(func() { value = s.eng.GetVariable(name) })
	s.log.Debug(context.Background(), "variable read", "name", name, "value", value)
	return value, nil
}
