package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/truco/application"
)

func main() {
	cmd, err := newRootCmd()
	if err == nil {
		err = cmd.Execute()
	}
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:           "truco",
		Short:         "Play Truco Mineiro against a friend or the computer",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	v, err := newConfig(cmd)
	if err != nil {
		return nil, err
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := loadEnvFile(v, v.GetString("env-file")); err != nil {
			return err
		}
		s, err := loadSettings(v)
		if err != nil {
			return err
		}
		return run(s)
	}
	return cmd, nil
}

func run(s settings) error {
	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(s.LogLevel)))
	logger := slog.New(handler)

	g, err := application.NewGameOrchestrator(s.Game,
		application.WithLogger(logger),
		application.WithAnnouncer(newTableAnnouncer(!s.Game.HasHuman())),
	)
	if err != nil {
		return err
	}

	renderBanner()
	games := s.Games
	var again func() bool
	if g.HasHuman() {
		games, again = 1, askPlayAgain
	}
	reports, err := g.Run(games, again)
	if len(reports) > 1 {
		renderSummary(s.Game, reports)
	}
	if err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}
	return nil
}

func renderBanner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("T", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ruco", pterm.FgDarkGray.ToStyle()),
	).Render()
}

func askPlayAgain() bool {
	again, err := pterm.DefaultInteractiveConfirm.WithDefaultText("Play another match?").WithDefaultValue(true).Show()
	if err != nil {
		return false
	}
	return again
}

func ptermLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case l <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case l <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
