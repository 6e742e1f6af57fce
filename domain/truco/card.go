package truco

import "fmt"

// Card represents a playing card with a name (e.g. "4♣") and a strength.
// Only the strength takes part in comparisons: two cards of the same rank
// from different suits tie.
type Card struct {
	name     string
	strength int
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - name: the printable name of the card, must not be empty
//   - strength: the trick-taking strength, higher beats lower, must not be negative
//
// Returns the Card or an error if name or strength is invalid.
func NewCard(name string, strength int) (Card, error) {
	if name == "" {
		return Card{}, fmt.Errorf("invalid card: empty name")
	}
	if strength < 0 {
		return Card{}, fmt.Errorf("invalid card %s: negative strength %d", name, strength)
	}
	return Card{name: name, strength: strength}, nil
}

// Name returns the printable name of the Card.
func (c Card) Name() string {
	return c.name
}

// Strength returns the trick-taking strength of the Card.
func (c Card) Strength() int {
	return c.strength
}

// Stronger reports whether c beats other.
func (c Card) Stronger(other Card) bool {
	return c.strength > other.strength
}

// Ties reports whether c and other have the same strength.
func (c Card) Ties(other Card) bool {
	return c.strength == other.strength
}

func (c Card) String() string {
	return c.name
}
