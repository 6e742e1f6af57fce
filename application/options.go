package application

import (
	"log/slog"

	"github.com/luca-patrignani/truco/domain/truco"
	"github.com/luca-patrignani/truco/player"
)

type option func(GameOrchestrator) GameOrchestrator

func WithLogger(logger *slog.Logger) option {
	return func(g GameOrchestrator) GameOrchestrator {
		g.logger = logger
		return g
	}
}

func WithAnnouncer(a truco.Announcer) option {
	return func(g GameOrchestrator) GameOrchestrator {
		g.announcer = a
		return g
	}
}

// WithPrompter replaces the terminal prompter used by human seats.
func WithPrompter(p player.Prompter) option {
	return func(g GameOrchestrator) GameOrchestrator {
		g.prompter = p
		return g
	}
}
