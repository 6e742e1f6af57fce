package truco

import "fmt"

// negotiation is the outcome of a raise proposal.
type negotiation struct {
	Proposed bool
	Conceded bool
	Conceder Side
	// Level is the value of the hand once the exchange is over.
	Level WagerLevel
	// Rounds counts the answers given by the two players.
	Rounds int
}

// offerTruco lets mover raise the hand before playing a card and, if it
// does, runs the response protocol.
func (m *Match) offerTruco(mover Side) (negotiation, error) {
	proposed, err := m.Hand.Value().Next()
	if err != nil {
		return negotiation{}, err
	}
	p := *m.Players[mover]
	ok, err := m.ports[mover].ProposeTruco(p, proposed)
	if err != nil {
		return negotiation{}, fmt.Errorf("%s proposing truco: %w", p.Name, err)
	}
	if !ok {
		return negotiation{Level: m.Hand.Value()}, nil
	}
	return m.negotiate(mover, proposed)
}

// negotiate runs the exchange started by proposer raising the hand to
// proposed. A Reraise counts as acceptance of the standing proposal and
// turns the responder into the next proposer, one level higher; the ladder
// bounds the exchange to four rounds.
func (m *Match) negotiate(proposer Side, proposed WagerLevel) (negotiation, error) {
	res := negotiation{Proposed: true}
	responder := proposer.Opponent()
	for {
		m.announcer.TrucoProposed(*m.Players[proposer], proposed)
		r, err := m.ports[responder].RespondToTruco(*m.Players[responder], *m.Players[proposer], proposed)
		if err != nil {
			return res, fmt.Errorf("%s answering %s: %w", m.Players[responder].Name, proposed, err)
		}
		if err := checkResponse(r, proposed); err != nil {
			return res, fmt.Errorf("%s answering %s: %w", m.Players[responder].Name, proposed, err)
		}
		res.Rounds++
		m.announcer.TrucoAnswered(*m.Players[responder], r, proposed)
		m.logger.Debug("truco answered", "responder", m.Players[responder].Name, "response", r, "proposed", proposed)

		switch r {
		case Accept:
			if err := m.Hand.EscalateTo(proposed); err != nil {
				return res, err
			}
			res.Level = proposed
			return res, nil
		case Concede:
			res.Conceded = true
			res.Conceder = responder
			res.Level = m.Hand.Value()
			return res, nil
		case Reraise:
			if err := m.Hand.EscalateTo(proposed); err != nil {
				return res, err
			}
			next, err := proposed.Next()
			if err != nil {
				return res, fmt.Errorf("%w: %w", ErrContractViolation, err)
			}
			proposed = next
			proposer, responder = responder, proposer
		}
	}
}
