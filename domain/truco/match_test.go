package truco

import (
	"errors"
	"testing"
)

func TestNewMatch(t *testing.T) {
	deck := deckOf(t, []int{1, 2, 3}, []int{4, 5, 6})
	port := &scriptedPort{}

	m, err := NewMatch(
		Seat{Player: Player{Name: "Ana", Score: 7, Side: SideB}, Port: port},
		Seat{Player: Player{Name: "Bia", Score: 3}, Port: port},
		deck,
		WithID("match-1"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if m.ID != "match-1" {
		t.Errorf("ID = %q", m.ID)
	}
	a, b := m.Players[SideA], m.Players[SideB]
	if a.Side != SideA || b.Side != SideB {
		t.Errorf("sides %s and %s", a.Side, b.Side)
	}
	if a.Score != 0 || b.Score != 0 {
		t.Errorf("scores %d-%d, want 0-0", a.Score, b.Score)
	}
	if m.Opener() != SideA || m.IsOver() || m.Winner() != nil {
		t.Error("unexpected initial state")
	}

	generated := newTestMatch(t, deck, port, port)
	if generated.ID == "" {
		t.Error("expected a generated id")
	}
}

func TestNewMatchValidation(t *testing.T) {
	deck := deckOf(t, []int{1, 2, 3}, []int{4, 5, 6})
	port := &scriptedPort{}
	seat := Seat{Player: Player{Name: "Ana"}, Port: port}

	tests := []struct {
		name string
		a, b Seat
		deck DeckSource
		opts []option
	}{
		{name: "missing port", a: seat, b: Seat{Player: Player{Name: "Bia"}}, deck: deck},
		{name: "missing deck", a: seat, b: seat},
		{name: "bad opener", a: seat, b: seat, deck: deck, opts: []option{WithOpener(Side(4))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMatch(tt.a, tt.b, tt.deck, tt.opts...); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestTrickOrder(t *testing.T) {
	tests := []struct {
		name   string
		a, b   []int
		opener Side
		played []string
		winner Side
	}{
		{
			name:   "trick winner leads the next trick",
			a:      []int{1, 9, 5},
			b:      []int{5, 1, 3},
			opener: SideA,
			played: []string{"Ana", "Bia", "Bia", "Ana", "Ana", "Bia"},
			winner: SideA,
		},
		{
			name:   "a tied trick keeps the leader",
			a:      []int{3, 1, 9},
			b:      []int{3, 5, 1},
			opener: SideB,
			played: []string{"Bia", "Ana", "Bia", "Ana"},
			winner: SideB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ann := &recordingAnnouncer{}
			m := newTestMatch(t, deckOf(t, tt.a, tt.b), &scriptedPort{}, &scriptedPort{},
				WithAnnouncer(ann), WithOpener(tt.opener))

			res, err := m.PlayHand()
			if err != nil {
				t.Fatal(err)
			}
			if len(ann.played) != len(tt.played) {
				t.Fatalf("played %v, want %v", ann.played, tt.played)
			}
			for i := range ann.played {
				if ann.played[i] != tt.played[i] {
					t.Fatalf("played %v, want %v", ann.played, tt.played)
				}
			}
			if res.Winner != tt.winner {
				t.Errorf("winner %s, want %s", res.Winner, tt.winner)
			}
		})
	}
}

func TestLevelHandTieBreak(t *testing.T) {
	tests := []struct {
		name      string
		a, b      []int
		opener    Side
		winner    Side
		tieBroken bool
	}{
		{
			name:      "first decided trick wins",
			a:         []int{5, 1, 3},
			b:         []int{1, 5, 3},
			opener:    SideA,
			winner:    SideA,
			tieBroken: true,
		},
		{
			name:      "all tied goes to the hand opener",
			a:         []int{4, 4, 4},
			b:         []int{4, 4, 4},
			opener:    SideB,
			winner:    SideB,
			tieBroken: true,
		},
		{
			name:      "tie then a win is a plain majority",
			a:         []int{3, 1, 9},
			b:         []int{3, 5, 1},
			opener:    SideA,
			winner:    SideB,
			tieBroken: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMatch(t, deckOf(t, tt.a, tt.b), &scriptedPort{}, &scriptedPort{}, WithOpener(tt.opener))
			res, err := m.PlayHand()
			if err != nil {
				t.Fatal(err)
			}
			if res.Winner != tt.winner || res.TieBroken != tt.tieBroken {
				t.Fatalf("winner %s (tie broken %v), want %s (%v)", res.Winner, res.TieBroken, tt.winner, tt.tieBroken)
			}
			if m.Players[tt.winner].Score != 1 {
				t.Fatalf("winner scored %d, want 1", m.Players[tt.winner].Score)
			}
		})
	}
}

func TestLastTrickLeaderOpensNextHand(t *testing.T) {
	tests := []struct {
		name   string
		a, b   []int
		opener Side
		next   Side
	}{
		{
			name:   "winner of the last trick",
			a:      []int{1, 9, 9},
			b:      []int{9, 1, 1},
			opener: SideB,
			next:   SideA,
		},
		{
			name:   "opener keeps winning",
			a:      []int{9, 9, 9},
			b:      []int{1, 1, 1},
			opener: SideA,
			next:   SideA,
		},
		{
			name:   "leader of a tied last trick",
			a:      []int{5, 1, 3},
			b:      []int{1, 5, 3},
			opener: SideA,
			next:   SideB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMatch(t, deckOf(t, tt.a, tt.b), &scriptedPort{}, &scriptedPort{}, WithOpener(tt.opener))
			res, err := m.PlayHand()
			if err != nil {
				t.Fatal(err)
			}
			if res.Opener != tt.opener || res.Number != 1 {
				t.Fatalf("result %+v", res)
			}
			if m.Opener() != tt.next {
				t.Fatalf("next opener %s, want %s", m.Opener(), tt.next)
			}
		})
	}
}

func TestConcessionPicksNextOpener(t *testing.T) {
	tests := []struct {
		name   string
		opener Side
	}{
		{name: "opener raises and the other side runs", opener: SideA},
		{name: "second side opens and raises", opener: SideB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raiser := &scriptedPort{propose: proposeOnce()}
			runner := &scriptedPort{respond: respondWith(Concede)}
			ports := [2]DecisionPort{}
			ports[tt.opener] = raiser
			ports[tt.opener.Opponent()] = runner
			m := newTestMatch(t, deckOf(t, []int{1, 2, 3}, []int{4, 5, 6}), ports[SideA], ports[SideB], WithOpener(tt.opener))

			res, err := m.PlayHand()
			if err != nil {
				t.Fatal(err)
			}
			if !res.Conceded || res.Conceder != tt.opener.Opponent() {
				t.Fatalf("unexpected result %+v", res)
			}
			if m.Opener() != tt.opener {
				t.Fatalf("next opener %s, want %s", m.Opener(), tt.opener)
			}
		})
	}
}

func TestPlayUntilWinningScore(t *testing.T) {
	ann := &recordingAnnouncer{}
	rec := &sliceRecorder{}
	m := newTestMatch(t, deckOf(t, []int{9, 9, 9}, []int{1, 1, 1}), &scriptedPort{}, &scriptedPort{},
		WithAnnouncer(ann), WithRecorder(rec))

	winner, err := m.Play()
	if err != nil {
		t.Fatal(err)
	}
	if winner == nil || winner.Name != "Ana" || winner.Score != WinningScore {
		t.Fatalf("winner %v", winner)
	}
	if m.HandsPlayed() != WinningScore || len(rec.results) != WinningScore || len(ann.hands) != WinningScore {
		t.Fatalf("hands %d, recorded %d, announced %d", m.HandsPlayed(), len(rec.results), len(ann.hands))
	}
	if !ann.finished || ann.winner != winner {
		t.Fatal("winner not announced")
	}
	if _, err := m.PlayHand(); err == nil {
		t.Fatal("expected error playing after the match is over")
	}
}

func TestScoreMayPassWinningScore(t *testing.T) {
	a := &scriptedPort{propose: proposeOnce()}
	m := newTestMatch(t, deckOf(t, []int{9, 9, 9}, []int{1, 1, 1}), a, &scriptedPort{})
	m.Players[SideA].Score = 10

	if _, err := m.PlayHand(); err != nil {
		t.Fatal(err)
	}
	if m.Players[SideA].Score != 13 || !m.IsOver() {
		t.Fatalf("score %d, over %v", m.Players[SideA].Score, m.IsOver())
	}
	if w := m.Winner(); w == nil || w.Side != SideA {
		t.Fatalf("winner %v", w)
	}
}

func TestBadCardIndexAbortsMatch(t *testing.T) {
	a := &scriptedPort{
		choose: func(_ Player, cards []Card) (int, error) {
			return len(cards), nil
		},
	}
	ann := &recordingAnnouncer{}
	m := newTestMatch(t, deckOf(t, []int{9, 9, 9}, []int{1, 1, 1}), a, &scriptedPort{}, WithAnnouncer(ann))

	winner, err := m.Play()
	if !errors.Is(err, ErrContractViolation) {
		t.Fatalf("expected contract violation, got %v", err)
	}
	if winner != nil || ann.finished || m.HandsPlayed() != 0 {
		t.Fatal("the match should stop at the first bad index")
	}
}

func TestRecorderErrorIsReturned(t *testing.T) {
	m := newTestMatch(t, deckOf(t, []int{9, 9, 9}, []int{1, 1, 1}), &scriptedPort{}, &scriptedPort{},
		WithRecorder(failingRecorder{}))
	if _, err := m.PlayHand(); err == nil {
		t.Fatal("expected the recorder error")
	}
}

type failingRecorder struct{}

func (failingRecorder) Record(HandResult) error {
	return errors.New("ledger full")
}
