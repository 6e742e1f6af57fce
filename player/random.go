package player

import (
	"fmt"

	"github.com/luca-patrignani/truco/common"
	"github.com/luca-patrignani/truco/domain/truco"
)

// Random is an automated player choosing uniformly among the legal options.
type Random struct {
	rng *common.Source
}

func NewRandom(rng *common.Source) *Random {
	return &Random{rng: rng}
}

func (r *Random) ChooseCard(_ truco.Player, cards []truco.Card) (int, error) {
	if len(cards) == 0 {
		return 0, fmt.Errorf("no cards to choose from")
	}
	return r.rng.Intn(len(cards)), nil
}

func (r *Random) ProposeTruco(_ truco.Player, _ truco.WagerLevel) (bool, error) {
	return r.rng.Intn(2) == 1, nil
}

func (r *Random) RespondToTruco(_, _ truco.Player, proposed truco.WagerLevel) (truco.Response, error) {
	legal := truco.LegalResponses(proposed)
	return legal[r.rng.Intn(len(legal))], nil
}
