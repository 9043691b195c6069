package matcalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	matcalc "github.com/matsci/matcalc-go/pkg/matcalc"
	"github.com/matsci/matcalc-go/pkg/matcalc/mockengine"
)

func newSession(t *testing.T) (*matcalc.Session, *mockengine.Engine) {
	t.Helper()
	eng := mockengine.New()
	s := matcalc.NewSession(eng, matcalc.Config{AppDir: t.TempDir()})
	return s, eng
}

func newInitializedSession(t *testing.T) (*matcalc.Session, *mockengine.Engine) {
	t.Helper()
	s, eng := newSession(t)
	require.NoError(t, s.Init())
	return s, eng
}

func TestCommandsBeforeInitFailFast(t *testing.T) {
	s, eng := newSession(t)

	assert.ErrorIs(t, s.ExecuteCommand("select-element C"), matcalc.ErrNotInitialized)
	assert.ErrorIs(t, s.ExecuteCommandNewLine("select-element C"), matcalc.ErrNotInitialized)
	assert.ErrorIs(t, s.CalcEquilibrium(), matcalc.ErrNotInitialized)
	assert.ErrorIs(t, s.SetTemperatureKelvin(1000), matcalc.ErrNotInitialized)

	_, err := s.GetVariable("F$FCC_A1")
	assert.ErrorIs(t, err, matcalc.ErrNotInitialized)

	// Nothing may have reached the engine.
	assert.Empty(t, eng.Commands())
	assert.Empty(t, eng.NewLineCommands())
}

func TestInitIssuesBootstrapCommands(t *testing.T) {
	s, eng := newSession(t)

	require.NoError(t, s.Init())

	require.True(t, eng.Initialized())
	appDir, external := eng.InitArgs()
	assert.Equal(t, s.AppDir(), appDir)
	assert.True(t, external)

	assert.Equal(t, []string{
		"set-working-directory ./",
		"set-application-directory " + s.AppDir(),
	}, eng.Commands())
}

func TestInitTwiceFails(t *testing.T) {
	s, _ := newInitializedSession(t)
	assert.ErrorIs(t, s.Init(), matcalc.ErrAlreadyInitialized)
}

func TestInitBootstrapFailurePropagates(t *testing.T) {
	s, eng := newSession(t)
	eng.FailCommand("set-working-directory ./", 3)

	err := s.Init()

	var cmdErr *matcalc.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, int32(3), cmdErr.Code)
	assert.Equal(t, "set-working-directory ./", cmdErr.Cmd)

	// The session must remain uninitialized after a failed bootstrap.
	assert.ErrorIs(t, s.ExecuteCommand("select-element C"), matcalc.ErrNotInitialized)
}

func TestCloseReleasesEngineOnce(t *testing.T) {
	s, eng := newInitializedSession(t)

	require.NoError(t, s.Close())
	assert.True(t, eng.Closed())

	assert.ErrorIs(t, s.Close(), matcalc.ErrSessionClosed)
	assert.ErrorIs(t, s.ExecuteCommand("select-element C"), matcalc.ErrSessionClosed)
	assert.ErrorIs(t, s.Init(), matcalc.ErrSessionClosed)
}

func TestAppDirFallsBackToEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(matcalc.EnvAppDir, dir)

	s := matcalc.NewSession(mockengine.New(), matcalc.Config{})
	assert.Equal(t, dir, s.AppDir())
}
