package truco

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Seat binds a player to the source of its decisions.
type Seat struct {
	Player Player
	Port   DecisionPort
}

// Match runs hands between two players until one of them reaches
// WinningScore.
type Match struct {
	ID      string
	Players [2]*Player
	Hand    *Hand

	ports     [2]DecisionPort
	deck      DeckSource
	opener    Side
	hands     int
	over      bool
	logger    *slog.Logger
	announcer Announcer
	recorder  Recorder
}

// NewMatch seats a on SideA and b on SideB with their scores reset.
func NewMatch(a, b Seat, deck DeckSource, opts ...option) (*Match, error) {
	if a.Port == nil || b.Port == nil {
		return nil, fmt.Errorf("both seats need a decision port")
	}
	if deck == nil {
		return nil, fmt.Errorf("missing deck source")
	}
	pa, pb := a.Player, b.Player
	pa.Side, pb.Side = SideA, SideB
	pa.Score, pb.Score = 0, 0

	m := Match{
		ID:        uuid.NewString(),
		Players:   [2]*Player{&pa, &pb},
		ports:     [2]DecisionPort{a.Port, b.Port},
		deck:      deck,
		opener:    SideA,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		announcer: NopAnnouncer{},
	}
	for _, opt := range opts {
		m = opt(m)
	}
	if m.opener != SideA && m.opener != SideB {
		return nil, fmt.Errorf("invalid opener %s", m.opener)
	}
	m.logger = m.logger.With("match", m.ID)
	return &m, nil
}

// Opener returns the side that opens the next hand.
func (m *Match) Opener() Side {
	return m.opener
}

// HandsPlayed returns the number of completed hands.
func (m *Match) HandsPlayed() int {
	return m.hands
}

// IsOver reports whether a player reached WinningScore.
func (m *Match) IsOver() bool {
	return m.over
}

// Winner returns the player with the higher score once the match is over.
func (m *Match) Winner() *Player {
	if !m.over {
		return nil
	}
	a, b := m.Players[SideA], m.Players[SideB]
	switch {
	case a.Score > b.Score:
		return a
	case b.Score > a.Score:
		return b
	default:
		return nil
	}
}

// Play runs hands until the match is over and returns the winner.
// Any error aborts the match.
func (m *Match) Play() (*Player, error) {
	m.logger.Info("match started", "a", m.Players[SideA].Name, "b", m.Players[SideB].Name)
	for !m.over {
		if _, err := m.PlayHand(); err != nil {
			m.logger.Error("match aborted", "error", err)
			return nil, err
		}
	}
	winner := m.Winner()
	m.announcer.MatchWinner(winner)
	if winner != nil {
		m.logger.Info("match over", "winner", winner.Name, "hands", m.hands)
	}
	return winner, nil
}

// PlayHand deals and plays one hand, credits its points and decides who
// opens the next one.
func (m *Match) PlayHand() (HandResult, error) {
	if m.over {
		return HandResult{}, fmt.Errorf("match is over")
	}
	id, err := gonanoid.New(10)
	if err != nil {
		return HandResult{}, fmt.Errorf("hand id: %w", err)
	}
	m.Hand = NewHand()
	if err := m.Hand.Deal(m.deck); err != nil {
		return HandResult{}, err
	}
	result := HandResult{
		ID:     id,
		Number: m.hands + 1,
		Opener: m.opener,
	}
	logger := m.logger.With("hand", result.Number)
	logger.Debug("hand dealt", "opener", m.opener)
	m.announcer.OpeningPlayer(*m.Players[m.opener])

	end, err := m.playTricks()
	if err != nil {
		return HandResult{}, err
	}

	result.Outcomes = m.Hand.Outcomes()
	result.Value = m.Hand.Value()
	result.Points = m.Hand.Value().Points()
	if end.Conceded {
		result.Conceded = true
		result.Conceder = end.Conceder
		result.Winner = end.Conceder.Opponent()
	} else {
		result.Winner, result.TieBroken = m.handWinner(m.opener)
	}

	winner := m.Players[result.Winner]
	winner.Score += result.Points
	m.hands++
	logger.Info("hand over", "winner", winner.Name, "points", result.Points, "conceded", result.Conceded)

	if end.Conceded {
		m.announcer.Concession(*m.Players[end.Conceder], *winner, result.Points)
		m.opener = end.Conceder.Opponent()
	} else {
		m.opener = end.Leader
	}
	m.announcer.HandScore(result, *winner)
	m.announcer.MatchScore(*m.Players[SideA], *m.Players[SideB])

	if m.recorder != nil {
		if err := m.recorder.Record(result); err != nil {
			return result, fmt.Errorf("record hand %d: %w", result.Number, err)
		}
	}
	if m.Players[SideA].Score >= WinningScore || m.Players[SideB].Score >= WinningScore {
		m.over = true
	}
	return result, nil
}

// handEnd tells how the tricks of a hand came to an end. Leader is the side
// due to lead the next trick: the winner of the last trick, or its leader
// when it tied. It opens the next hand.
type handEnd struct {
	Leader   Side
	Conceded bool
	Conceder Side
}

// playTricks alternates the two sides trick by trick until the hand is over
// or somebody runs away from a raise.
func (m *Match) playTricks() (handEnd, error) {
	trickOpener := m.opener
	for !m.Hand.IsOver() {
		var idx [2]int
		for _, side := range []Side{trickOpener, trickOpener.Opponent()} {
			if !m.Hand.Capped() {
				res, err := m.offerTruco(side)
				if err != nil {
					return handEnd{}, err
				}
				if res.Conceded {
					return handEnd{Leader: trickOpener, Conceded: true, Conceder: res.Conceder}, nil
				}
			}
			i, err := m.chooseCard(side)
			if err != nil {
				return handEnd{}, err
			}
			idx[side] = i
		}
		outcome, err := m.Hand.PlayTrick(idx[SideA], idx[SideB])
		if err != nil {
			return handEnd{}, err
		}
		m.announcer.TrickResolved(m.Hand.TricksPlayed(), outcome)
		if w, ok := outcome.Winner(); ok {
			trickOpener = w
		}
	}
	return handEnd{Leader: trickOpener}, nil
}

func (m *Match) chooseCard(side Side) (int, error) {
	cards := m.Hand.Cards(side)
	p := *m.Players[side]
	i, err := m.ports[side].ChooseCard(p, cards)
	if err != nil {
		return 0, fmt.Errorf("%s choosing a card: %w", p.Name, err)
	}
	if err := checkCardIndex(i, len(cards)); err != nil {
		return 0, fmt.Errorf("%s choosing a card: %w", p.Name, err)
	}
	m.announcer.CardPlayed(p, cards[i])
	return i, nil
}

// handWinner picks the winner of a hand that was played out. A level hand
// goes to the side that won the first decided trick, or to the hand opener
// when no trick was decided.
func (m *Match) handWinner(opener Side) (Side, bool) {
	if w, ok := m.Hand.Winner().Winner(); ok {
		return w, false
	}
	for _, o := range m.Hand.Outcomes() {
		if w, ok := o.Winner(); ok {
			return w, true
		}
	}
	return opener, true
}
