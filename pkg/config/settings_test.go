package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.IntP("quantum", "q", 0, "")
	flags.String("log-level", "", "")
	flags.Bool("no-color", false, "")
	return flags
}

func TestNewSettings_Defaults(t *testing.T) {
	s, err := NewSettings(newFlags(), "")
	require.NoError(t, err)

	assert.Equal(t, &Settings{
		Quantum:       2,
		LogLevel:      "warn",
		NoColor:       false,
		TimelineLimit: 50,
		Listen:        ":9095",
		MaxHorizon:    DefaultMaxHorizon,
	}, s)
}

func TestNewSettings_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("quantum: 3\ntimeline-limit: 10\nlisten: \":8080\"\n"), 0o644))

	s, err := NewSettings(newFlags(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Quantum)
	assert.Equal(t, 10, s.TimelineLimit)
	assert.Equal(t, ":8080", s.Listen)

	t.Setenv("SCHEDSIM_QUANTUM", "4")
	t.Setenv("SCHEDSIM_LOG_LEVEL", "debug")
	s, err = NewSettings(newFlags(), path)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Quantum)
	assert.Equal(t, "debug", s.LogLevel)

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"-q", "6", "--no-color"}))
	s, err = NewSettings(flags, path)
	require.NoError(t, err)
	assert.Equal(t, 6, s.Quantum)
	assert.True(t, s.NoColor)
}

func TestNewSettings_Errors(t *testing.T) {
	_, err := NewSettings(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read settings file")
}

func TestNewSettings_ZeroQuantumIsAccepted(t *testing.T) {
	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"-q", "0"}))

	s, err := NewSettings(flags, "")
	require.NoError(t, err)
	assert.Zero(t, s.Quantum)

	t.Setenv("SCHEDSIM_QUANTUM", "-1")
	s, err = NewSettings(nil, "")
	require.NoError(t, err)
	assert.Equal(t, -1, s.Quantum)
}

func TestNewSettings_MaxHorizon(t *testing.T) {
	s, err := NewSettings(nil, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxHorizon, s.MaxHorizon)

	t.Setenv("SCHEDSIM_MAX_HORIZON", "500")
	s, err = NewSettings(nil, "")
	require.NoError(t, err)
	assert.Equal(t, 500, s.MaxHorizon)
}
