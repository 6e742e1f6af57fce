package truco

import "log/slog"

type option func(Match) Match

// WithLogger sets the logger used to trace the match. The default discards.
func WithLogger(logger *slog.Logger) option {
	return func(m Match) Match {
		m.logger = logger
		return m
	}
}

// WithAnnouncer sets the receiver of the informational callbacks.
func WithAnnouncer(a Announcer) option {
	return func(m Match) Match {
		m.announcer = a
		return m
	}
}

// WithRecorder sets where completed hands are recorded.
func WithRecorder(r Recorder) option {
	return func(m Match) Match {
		m.recorder = r
		return m
	}
}

// WithOpener chooses the side opening the first hand. SideA by default.
func WithOpener(s Side) option {
	return func(m Match) Match {
		m.opener = s
		return m
	}
}

// WithID overrides the generated match id.
func WithID(id string) option {
	return func(m Match) Match {
		m.ID = id
		return m
	}
}
