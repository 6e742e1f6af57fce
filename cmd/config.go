package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/luca-patrignani/truco/application"
	"github.com/luca-patrignani/truco/domain/truco"
)

const envPrefix = "TRUCO"

// flag name, config key, default, usage
var configKeys = []struct {
	flag  string
	key   string
	value any
	usage string
}{
	{"player1-name", "player1.name", "You", "name of the first player"},
	{"player1-kind", "player1.kind", string(truco.Human), "first player kind: human or auto"},
	{"player2-name", "player2.name", "Truqueiro", "name of the second player"},
	{"player2-kind", "player2.kind", string(truco.Automated), "second player kind: human or auto"},
	{"seed", "seed", "", "seed for reproducible deals and automated players (empty for entropy)"},
	{"cards", "cards", "", "CSV card table to play with (empty for the built-in one)"},
	{"games", "games", 1, "matches to play when no human is seated"},
	{"log-level", "log-level", "warn", "log level: debug, info, warn or error"},
	{"env-file", "env-file", ".env", "dotenv file read before the environment"},
}

// settings is the validated configuration of one run.
type settings struct {
	Game     application.Config
	Games    int
	LogLevel slog.Level
}

// newConfig declares the flags of cmd and binds them, together with the
// TRUCO_ environment variables, into a fresh viper instance.
func newConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	flags := cmd.Flags()
	for _, k := range configKeys {
		switch def := k.value.(type) {
		case int:
			flags.Int(k.flag, def, k.usage)
		case string:
			flags.String(k.flag, def, k.usage)
		}
		v.SetDefault(k.key, k.value)
		if err := v.BindPFlag(k.key, flags.Lookup(k.flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", k.flag, err)
		}
	}
	return v, nil
}

// envName returns the environment variable read for key.
func envName(key string) string {
	r := strings.NewReplacer(".", "_", "-", "_")
	return envPrefix + "_" + strings.ToUpper(r.Replace(key))
}

// loadEnvFile reads a dotenv file into v. Its values rank below flags and the
// real environment; a missing file is not an error.
func loadEnvFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	for _, k := range configKeys {
		if value, ok := values[envName(k.key)]; ok {
			v.SetDefault(k.key, value)
		}
	}
	return nil
}

func parseKind(s string) (truco.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(truco.Human):
		return truco.Human, nil
	case string(truco.Automated), "automated", "random":
		return truco.Automated, nil
	default:
		return "", fmt.Errorf("unknown player kind %q, want human or auto", s)
	}
}

// loadSettings reads and validates the configuration held by v.
func loadSettings(v *viper.Viper) (settings, error) {
	var s settings
	for i := range s.Game.Players {
		prefix := fmt.Sprintf("player%d", i+1)
		kind, err := parseKind(v.GetString(prefix + ".kind"))
		if err != nil {
			return settings{}, fmt.Errorf("%s: %w", prefix, err)
		}
		s.Game.Players[i] = application.SeatConfig{
			Name: strings.TrimSpace(v.GetString(prefix + ".name")),
			Kind: kind,
		}
	}
	s.Game.Seed = v.GetString("seed")
	s.Game.Cards = v.GetString("cards")

	s.Games = v.GetInt("games")
	if s.Games < 1 {
		return settings{}, fmt.Errorf("games must be at least 1, got %d", s.Games)
	}
	if err := s.LogLevel.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return settings{}, fmt.Errorf("log-level: %w", err)
	}
	return s, nil
}
