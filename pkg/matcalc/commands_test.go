package matcalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	matcalc "github.com/matsci/matcalc-go/pkg/matcalc"
)

func TestExecuteCommandSuccessIsSilent(t *testing.T) {
	s, eng := newInitializedSession(t)

	require.NoError(t, s.ExecuteCommand("select-element C"))
	assert.Contains(t, eng.Commands(), "select-element C")
}

func TestExecuteCommandSurfacesCodeAndText(t *testing.T) {
	s, eng := newInitializedSession(t)
	eng.FailCommand("select-element Zz", 17)

	err := s.ExecuteCommand("select-element Zz")

	var cmdErr *matcalc.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, int32(17), cmdErr.Code)
	assert.Equal(t, "select-element Zz", cmdErr.Cmd)
	assert.Contains(t, err.Error(), "select-element Zz")
	assert.Contains(t, err.Error(), "17")
}

func TestExecuteCommandNewLineUsesDistinctEntryPoint(t *testing.T) {
	s, eng := newInitializedSession(t)

	require.NoError(t, s.ExecuteCommandNewLine("use-module core"))
	assert.Contains(t, eng.NewLineCommands(), "use-module core")
	assert.NotContains(t, eng.Commands(), "use-module core")

	eng.FailCommand("bad-command", 5)
	err := s.ExecuteCommandNewLine("bad-command")

	var cmdErr *matcalc.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, int32(5), cmdErr.Code)
}

func TestCompositionSettersFormatCommands(t *testing.T) {
	cases := []struct {
		name string
		call func(s *matcalc.Session) error
		want string
	}{
		{
			name: "mole fraction",
			call: func(s *matcalc.Session) error { return s.SetElementMoleFraction("C", 0.002) },
			want: "enter-composition X C=0.002",
		},
		{
			name: "weight fraction",
			call: func(s *matcalc.Session) error { return s.SetElementWeightFraction("Mn", 0.015) },
			want: "enter-composition W Mn=0.015",
		},
		{
			name: "site fraction",
			call: func(s *matcalc.Session) error { return s.SetElementSiteFraction("N", 0.5) },
			want: "enter-composition U N=0.5",
		},
		{
			name: "scientific notation",
			call: func(s *matcalc.Session) error { return s.SetElementMoleFraction("C", 1e-05) },
			want: "enter-composition X C=1e-05",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, eng := newInitializedSession(t)
			require.NoError(t, tc.call(s))
			cmds := eng.Commands()
			assert.Equal(t, tc.want, cmds[len(cmds)-1])
		})
	}
}

func TestCompositionSetterInheritsCommandErrors(t *testing.T) {
	s, eng := newInitializedSession(t)
	eng.FailCommand("enter-composition X Zz=0.1", 9)

	err := s.SetElementMoleFraction("Zz", 0.1)

	var cmdErr *matcalc.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, int32(9), cmdErr.Code)
	assert.Contains(t, err.Error(), "enter-composition X Zz=0.1")
}

func TestCalcEquilibrium(t *testing.T) {
	s, eng := newInitializedSession(t)

	require.NoError(t, s.CalcEquilibrium())

	eng.FailEquilibrium(2)
	err := s.CalcEquilibrium()

	var eqErr *matcalc.EquilibriumError
	require.ErrorAs(t, err, &eqErr)
	assert.Equal(t, int32(2), eqErr.Code)
}

func TestSetTemperatureKelvinDiscardsEcho(t *testing.T) {
	s, eng := newInitializedSession(t)

	require.NoError(t, s.SetTemperatureKelvin(973.15))
	assert.Equal(t, 973.15, eng.Temperature())

	// The echoed previous value is discarded; a second call succeeds the
	// same way regardless of what the engine reports back.
	require.NoError(t, s.SetTemperatureKelvin(1073.15))
	assert.Equal(t, 1073.15, eng.Temperature())
}

func TestGetVariablePassesValuesThrough(t *testing.T) {
	s, eng := newInitializedSession(t)
	eng.SetVariable("F$FCC_A1", 0.73)
	eng.SetVariable("MU$C", -12345.6)

	v, err := s.GetVariable("F$FCC_A1")
	require.NoError(t, err)
	assert.Equal(t, 0.73, v)

	v, err = s.GetVariable("MU$C")
	require.NoError(t, err)
	assert.Equal(t, -12345.6, v)

	// Unknown names are not distinguishable from legitimate zeros.
	v, err = s.GetVariable("F$NO_SUCH_PHASE")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}
