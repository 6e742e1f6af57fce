package truco

import (
	"fmt"
	"slices"
)

// HandSize is the number of cards dealt to each side.
const HandSize = 3

// Hand holds the state of one deal: the cards left to each side, the
// outcome of every trick played so far and the current wager level.
type Hand struct {
	cards    [2][]Card
	outcomes []Outcome
	level    WagerLevel
	dealt    bool
}

// NewHand returns an undealt hand worth Common.
func NewHand() *Hand {
	return &Hand{level: Common}
}

// Deal draws HandSize cards per side from src. It can be called only once.
func (h *Hand) Deal(src DeckSource) error {
	if h.dealt {
		return fmt.Errorf("hand already dealt")
	}
	a, b, err := src.DealHands(HandSize)
	if err != nil {
		return fmt.Errorf("deal failed: %w", err)
	}
	if len(a) != HandSize || len(b) != HandSize {
		return fmt.Errorf("deal failed: expected %d cards per side, got %d and %d", HandSize, len(a), len(b))
	}
	seen := make(map[string]bool, 2*HandSize)
	for _, c := range slices.Concat(a, b) {
		if seen[c.Name()] {
			return fmt.Errorf("deal failed: card %s dealt twice", c)
		}
		seen[c.Name()] = true
	}
	h.cards[SideA] = slices.Clone(a)
	h.cards[SideB] = slices.Clone(b)
	h.dealt = true
	return nil
}

// Cards returns a copy of the cards still held by side s.
func (h *Hand) Cards(s Side) []Card {
	return slices.Clone(h.cards[s])
}

// PlayTrick removes the card at idxA from side A and the card at idxB from
// side B, resolves the trick and records its outcome.
func (h *Hand) PlayTrick(idxA, idxB int) (Outcome, error) {
	if !h.dealt {
		return OutcomeTie, fmt.Errorf("%w: trick played before the deal", ErrContractViolation)
	}
	if h.IsOver() {
		return OutcomeTie, fmt.Errorf("%w: trick played after the hand is over", ErrContractViolation)
	}
	if err := checkCardIndex(idxA, len(h.cards[SideA])); err != nil {
		return OutcomeTie, fmt.Errorf("side A: %w", err)
	}
	if err := checkCardIndex(idxB, len(h.cards[SideB])); err != nil {
		return OutcomeTie, fmt.Errorf("side B: %w", err)
	}
	a := h.cards[SideA][idxA]
	b := h.cards[SideB][idxB]
	h.cards[SideA] = slices.Delete(h.cards[SideA], idxA, idxA+1)
	h.cards[SideB] = slices.Delete(h.cards[SideB], idxB, idxB+1)

	outcome := Resolve(a, b)
	h.outcomes = append(h.outcomes, outcome)
	return outcome, nil
}

// IsOver reports whether the hand is decided. Three tricks always end it;
// two tricks end it when one side won both or when either of them tied.
func (h *Hand) IsOver() bool {
	switch len(h.outcomes) {
	case 3:
		return true
	case 2:
		first, second := h.outcomes[0], h.outcomes[1]
		if first == OutcomeTie || second == OutcomeTie {
			return true
		}
		return first == second
	default:
		return false
	}
}

// CountWins returns the tricks won by each side. Ties count for nobody.
func (h *Hand) CountWins() (a, b int) {
	for _, o := range h.outcomes {
		switch o {
		case OutcomeA:
			a++
		case OutcomeB:
			b++
		}
	}
	return a, b
}

// Winner returns the side that won more tricks, or OutcomeTie.
func (h *Hand) Winner() Outcome {
	a, b := h.CountWins()
	switch {
	case a > b:
		return OutcomeA
	case b > a:
		return OutcomeB
	default:
		return OutcomeTie
	}
}

// Capped reports whether the hand is already worth Twelve.
func (h *Hand) Capped() bool {
	return h.level.Capped()
}

// Escalate raises the hand one level up the ladder.
func (h *Hand) Escalate() error {
	next, err := h.level.Next()
	if err != nil {
		return err
	}
	h.level = next
	return nil
}

// EscalateTo sets the hand to an accepted level. The level never decreases.
func (h *Hand) EscalateTo(level WagerLevel) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidWager, int(level))
	}
	if level < h.level {
		return fmt.Errorf("cannot lower the hand from %s to %s", h.level, level)
	}
	h.level = level
	return nil
}

// Value returns the points the hand is worth if it is played out.
func (h *Hand) Value() WagerLevel {
	return h.level
}

// Outcomes returns a copy of the trick outcomes in order of play.
func (h *Hand) Outcomes() []Outcome {
	return slices.Clone(h.outcomes)
}

// TricksPlayed returns how many tricks have been resolved.
func (h *Hand) TricksPlayed() int {
	return len(h.outcomes)
}
