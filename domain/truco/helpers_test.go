package truco

import (
	"fmt"
	"testing"
)

func mustCard(t *testing.T, name string, strength int) Card {
	t.Helper()
	c, err := NewCard(name, strength)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// cardsOf builds uniquely named cards with the given strengths.
func cardsOf(t *testing.T, prefix string, strengths ...int) []Card {
	t.Helper()
	cards := make([]Card, len(strengths))
	for i, s := range strengths {
		cards[i] = mustCard(t, fmt.Sprintf("%s%d", prefix, i), s)
	}
	return cards
}

// fixedDeck deals the same prepared hands over and over.
type fixedDeck struct {
	deals [][2][]Card
	next  int
	err   error
}

func (d *fixedDeck) DealHands(count int) ([]Card, []Card, error) {
	if d.err != nil {
		return nil, nil, d.err
	}
	deal := d.deals[d.next%len(d.deals)]
	d.next++
	return deal[0], deal[1], nil
}

func deckOf(t *testing.T, a, b []int) *fixedDeck {
	t.Helper()
	return &fixedDeck{deals: [][2][]Card{{cardsOf(t, "a", a...), cardsOf(t, "b", b...)}}}
}

// scriptedPort answers with the given functions; nil ones play the first
// card, never raise and accept every raise.
type scriptedPort struct {
	choose  func(p Player, cards []Card) (int, error)
	propose func(p Player, proposed WagerLevel) (bool, error)
	respond func(responder, proposer Player, proposed WagerLevel) (Response, error)

	proposals int
	responses int
}

func (s *scriptedPort) ChooseCard(p Player, cards []Card) (int, error) {
	if s.choose == nil {
		return 0, nil
	}
	return s.choose(p, cards)
}

func (s *scriptedPort) ProposeTruco(p Player, proposed WagerLevel) (bool, error) {
	s.proposals++
	if s.propose == nil {
		return false, nil
	}
	return s.propose(p, proposed)
}

func (s *scriptedPort) RespondToTruco(responder, proposer Player, proposed WagerLevel) (Response, error) {
	s.responses++
	if s.respond == nil {
		return Accept, nil
	}
	return s.respond(responder, proposer, proposed)
}

// respondWith returns a respond function replaying rs in order.
func respondWith(rs ...Response) func(Player, Player, WagerLevel) (Response, error) {
	i := 0
	return func(Player, Player, WagerLevel) (Response, error) {
		if i >= len(rs) {
			return Accept, nil
		}
		r := rs[i]
		i++
		return r, nil
	}
}

// proposeOnce raises the first time it is asked only.
func proposeOnce() func(Player, WagerLevel) (bool, error) {
	done := false
	return func(Player, WagerLevel) (bool, error) {
		if done {
			return false, nil
		}
		done = true
		return true, nil
	}
}

// recordingAnnouncer keeps the notifications it receives.
type recordingAnnouncer struct {
	NopAnnouncer
	played      []string
	concessions int
	hands       []HandResult
	winner      *Player
	finished    bool
}

func (r *recordingAnnouncer) CardPlayed(p Player, c Card) {
	r.played = append(r.played, p.Name)
}

func (r *recordingAnnouncer) Concession(Player, Player, int) {
	r.concessions++
}

func (r *recordingAnnouncer) HandScore(res HandResult, _ Player) {
	r.hands = append(r.hands, res)
}

func (r *recordingAnnouncer) MatchWinner(w *Player) {
	r.winner = w
	r.finished = true
}

type sliceRecorder struct {
	results []HandResult
}

func (s *sliceRecorder) Record(r HandResult) error {
	s.results = append(s.results, r)
	return nil
}

func newTestMatch(t *testing.T, deck DeckSource, a, b DecisionPort, opts ...option) *Match {
	t.Helper()
	m, err := NewMatch(
		Seat{Player: Player{Name: "Ana", Kind: Automated}, Port: a},
		Seat{Player: Player{Name: "Bia", Kind: Automated}, Port: b},
		deck,
		opts...,
	)
	if err != nil {
		t.Fatal(err)
	}
	return m
}
