package deck

import (
	"fmt"

	"github.com/luca-patrignani/truco/common"
	"github.com/luca-patrignani/truco/domain/truco"
)

// Deck deals hands from a fixed Table, reshuffling the whole table for every
// deal so that no card repeats within a deal.
type Deck struct {
	table    *Table
	rng      *common.Source
	shuffled []truco.Card
	next     int
}

// NewDeck returns a Deck over table drawing its permutations from rng.
func NewDeck(table *Table, rng *common.Source) (*Deck, error) {
	if table == nil || table.Len() < MinTableSize {
		return nil, fmt.Errorf("deck needs a table of at least %d cards", MinTableSize)
	}
	if rng == nil {
		return nil, fmt.Errorf("deck needs a random source")
	}
	return &Deck{table: table, rng: rng}, nil
}

// DealHands shuffles the table and deals count cards to each side,
// alternating like a dealer would.
func (d *Deck) DealHands(count int) ([]truco.Card, []truco.Card, error) {
	if count <= 0 {
		return nil, nil, fmt.Errorf("invalid hand size %d", count)
	}
	if 2*count > d.table.Len() {
		return nil, nil, fmt.Errorf("table of %d cards cannot deal two hands of %d", d.table.Len(), count)
	}
	d.Shuffle()
	a := make([]truco.Card, 0, count)
	b := make([]truco.Card, 0, count)
	for range count {
		ca, err := d.draw()
		if err != nil {
			return nil, nil, err
		}
		cb, err := d.draw()
		if err != nil {
			return nil, nil, err
		}
		a = append(a, ca)
		b = append(b, cb)
	}
	return a, b, nil
}

// draw takes the next card of the current shuffle.
func (d *Deck) draw() (truco.Card, error) {
	if d.next >= len(d.shuffled) {
		return truco.Card{}, fmt.Errorf("deck exhausted")
	}
	c := d.shuffled[d.next]
	d.next++
	return c, nil
}

// Remaining returns how many cards of the current shuffle were not dealt.
func (d *Deck) Remaining() int {
	return len(d.shuffled) - d.next
}
