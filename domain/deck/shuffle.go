package deck

import "github.com/luca-patrignani/truco/domain/truco"

// Shuffle gathers every card of the table and puts it in a fresh random order.
func (d *Deck) Shuffle() {
	cards := d.table.Cards()
	perm := d.rng.Perm(len(cards))
	d.shuffled = make([]truco.Card, len(cards))
	for i, p := range perm {
		d.shuffled[i] = cards[p]
	}
	d.next = 0
}
