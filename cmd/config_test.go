package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/truco/domain/truco"
)

func parseConfig(t *testing.T, args ...string) (settings, error) {
	t.Helper()
	cmd := &cobra.Command{}
	v, err := newConfig(cmd)
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags(args))
	return loadSettings(v)
}

func TestDefaultSettings(t *testing.T) {
	s, err := parseConfig(t)
	require.NoError(t, err)
	assert.Equal(t, "You", s.Game.Players[0].Name)
	assert.Equal(t, truco.Human, s.Game.Players[0].Kind)
	assert.Equal(t, "Truqueiro", s.Game.Players[1].Name)
	assert.Equal(t, truco.Automated, s.Game.Players[1].Kind)
	assert.Equal(t, 1, s.Games)
	assert.Equal(t, slog.LevelWarn, s.LogLevel)
	assert.Empty(t, s.Game.Seed)
	assert.Empty(t, s.Game.Cards)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("TRUCO_PLAYER1_NAME", "Zé")
	t.Setenv("TRUCO_PLAYER1_KIND", "auto")
	t.Setenv("TRUCO_GAMES", "5")

	s, err := parseConfig(t, "--games", "3", "--seed", "abc", "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, "Zé", s.Game.Players[0].Name)
	assert.Equal(t, truco.Automated, s.Game.Players[0].Kind)
	assert.Equal(t, 3, s.Games)
	assert.Equal(t, "abc", s.Game.Seed)
	assert.Equal(t, slog.LevelDebug, s.LogLevel)
}

func TestInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown kind", args: []string{"--player2-kind", "robot"}},
		{name: "no games", args: []string{"--games", "0"}},
		{name: "bad log level", args: []string{"--log-level", "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfig(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TRUCO_PLAYER2_NAME=Chico\nTRUCO_SEED=from-file\n"), 0o600))
	t.Setenv("TRUCO_SEED", "from-env")

	cmd := &cobra.Command{}
	v, err := newConfig(cmd)
	require.NoError(t, err)
	require.NoError(t, loadEnvFile(v, path))

	s, err := loadSettings(v)
	require.NoError(t, err)
	assert.Equal(t, "Chico", s.Game.Players[1].Name)
	assert.Equal(t, "from-env", s.Game.Seed)
}

func TestMissingEnvFileIsIgnored(t *testing.T) {
	cmd := &cobra.Command{}
	v, err := newConfig(cmd)
	require.NoError(t, err)
	assert.NoError(t, loadEnvFile(v, filepath.Join(t.TempDir(), "missing.env")))
	assert.NoError(t, loadEnvFile(v, ""))
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "TRUCO_PLAYER1_NAME", envName("player1.name"))
	assert.Equal(t, "TRUCO_LOG_LEVEL", envName("log-level"))
}
