package application

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/luca-patrignani/truco/common"
	"github.com/luca-patrignani/truco/domain/deck"
	"github.com/luca-patrignani/truco/domain/truco"
	"github.com/luca-patrignani/truco/ledger"
	"github.com/luca-patrignani/truco/player"
)

// SeatConfig describes who sits on one side of the table.
type SeatConfig struct {
	Name string
	Kind truco.Kind
}

// Config is everything needed to set up a series of matches.
type Config struct {
	Players [2]SeatConfig
	// Seed makes every match reproducible. Empty means entropy.
	Seed string
	// Cards is the path of a card table. Empty means the embedded one.
	Cards string
}

// HasHuman reports whether a person sits at the table.
func (c Config) HasHuman() bool {
	return c.Players[0].Kind == truco.Human || c.Players[1].Kind == truco.Human
}

// MatchReport is the summary of a finished match.
type MatchReport struct {
	ID     string
	Winner string
	Scores [2]int
	Hands  int
	Ledger *ledger.Blockchain
}

// GameOrchestrator builds matches from a Config and plays them: it owns the
// card table, creates a deck and a decision port for every seat and keeps a
// ledger of each match.
type GameOrchestrator struct {
	cfg       Config
	table     *deck.Table
	logger    *slog.Logger
	announcer truco.Announcer
	prompter  player.Prompter
	played    int
}

// NewGameOrchestrator validates cfg and loads the card table.
func NewGameOrchestrator(cfg Config, opts ...option) (*GameOrchestrator, error) {
	for i, seat := range cfg.Players {
		if seat.Name == "" {
			return nil, fmt.Errorf("player %d has no name", i+1)
		}
		if seat.Kind != truco.Human && seat.Kind != truco.Automated {
			return nil, fmt.Errorf("player %d: unknown kind %q", i+1, seat.Kind)
		}
	}
	if cfg.Players[0].Name == cfg.Players[1].Name {
		return nil, fmt.Errorf("both players are called %s", cfg.Players[0].Name)
	}

	var table *deck.Table
	var err error
	if cfg.Cards == "" {
		table, err = deck.DefaultTable()
	} else {
		table, err = deck.LoadTableFile(cfg.Cards)
	}
	if err != nil {
		return nil, fmt.Errorf("card table: %w", err)
	}

	g := GameOrchestrator{
		cfg:       cfg,
		table:     table,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		announcer: truco.NopAnnouncer{},
		prompter:  player.TermPrompter{},
	}
	for _, opt := range opts {
		g = opt(g)
	}
	return &g, nil
}

func (g *GameOrchestrator) HasHuman() bool {
	return g.cfg.HasHuman()
}

// NewMatch sets up the next match with a fresh deck and ledger. With a seed,
// the n-th match of a series always deals and decides the same way.
func (g *GameOrchestrator) NewMatch() (*truco.Match, *ledger.Blockchain, error) {
	g.played++
	label := fmt.Sprintf("match-%d", g.played)
	d, err := deck.NewDeck(g.table, g.source(label+"/deck"))
	if err != nil {
		return nil, nil, err
	}

	var seats [2]truco.Seat
	for i, cfg := range g.cfg.Players {
		seats[i] = truco.Seat{
			Player: truco.Player{Name: cfg.Name, Kind: cfg.Kind},
			Port:   g.port(cfg, fmt.Sprintf("%s/player-%d", label, i+1)),
		}
	}

	// The first hand's opener is drawn; later ones follow the tricks.
	opener := truco.Side(g.source(label + "/opener").Intn(2))
	id := uuid.NewString()
	chain := ledger.NewBlockchain(id)
	m, err := truco.NewMatch(seats[0], seats[1], d,
		truco.WithID(id),
		truco.WithOpener(opener),
		truco.WithLogger(g.logger),
		truco.WithAnnouncer(g.announcer),
		truco.WithRecorder(chain),
	)
	if err != nil {
		return nil, nil, err
	}
	return m, chain, nil
}

// PlayMatch plays one match to the end and checks its ledger.
func (g *GameOrchestrator) PlayMatch() (MatchReport, error) {
	m, chain, err := g.NewMatch()
	if err != nil {
		return MatchReport{}, err
	}
	winner, err := m.Play()
	if err != nil {
		return MatchReport{}, fmt.Errorf("match %s: %w", m.ID, err)
	}
	if err := chain.Verify(); err != nil {
		return MatchReport{}, fmt.Errorf("match %s ledger: %w", m.ID, err)
	}
	report := MatchReport{
		ID:     m.ID,
		Scores: [2]int{m.Players[truco.SideA].Score, m.Players[truco.SideB].Score},
		Hands:  m.HandsPlayed(),
		Ledger: chain,
	}
	if winner != nil {
		report.Winner = winner.Name
	}
	g.logger.Info("match finished", "match", report.ID, "winner", report.Winner, "hands", report.Hands)
	return report, nil
}

// Run plays games matches, then keeps playing while again returns true.
// A nil again stops after games matches.
func (g *GameOrchestrator) Run(games int, again func() bool) ([]MatchReport, error) {
	var reports []MatchReport
	for i := 0; ; i++ {
		if i >= games && (again == nil || !again()) {
			break
		}
		report, err := g.PlayMatch()
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (g *GameOrchestrator) port(seat SeatConfig, label string) truco.DecisionPort {
	if seat.Kind == truco.Human {
		return player.NewHuman(g.prompter)
	}
	return player.NewRandom(g.source(label))
}

func (g *GameOrchestrator) source(label string) *common.Source {
	return common.Derive([]byte(g.cfg.Seed), label)
}
