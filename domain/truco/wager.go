package truco

import (
	"errors"
	"fmt"
)

// WagerLevel is the number of points a hand is worth.
type WagerLevel int

const (
	Common WagerLevel = 1
	Truco  WagerLevel = 3
	Six    WagerLevel = 6
	Nine   WagerLevel = 9
	Twelve WagerLevel = 12
)

var (
	ErrWagerCapped  = errors.New("wager already at twelve")
	ErrInvalidWager = errors.New("invalid wager level")
)

var ladder = []WagerLevel{Common, Truco, Six, Nine, Twelve}

// Next returns the level that follows w on the ladder. It returns
// ErrWagerCapped when w is Twelve: callers must check Capped before
// offering a raise.
func (w WagerLevel) Next() (WagerLevel, error) {
	for i, l := range ladder {
		if l != w {
			continue
		}
		if i == len(ladder)-1 {
			return w, ErrWagerCapped
		}
		return ladder[i+1], nil
	}
	return w, fmt.Errorf("%w: %d", ErrInvalidWager, int(w))
}

// Capped reports whether no raise can follow w.
func (w WagerLevel) Capped() bool {
	return w == Twelve
}

// Valid reports whether w is one of the ladder levels.
func (w WagerLevel) Valid() bool {
	for _, l := range ladder {
		if l == w {
			return true
		}
	}
	return false
}

// Points returns the score a hand at level w is worth.
func (w WagerLevel) Points() int {
	return int(w)
}

func (w WagerLevel) String() string {
	switch w {
	case Common:
		return "common"
	case Truco:
		return "truco"
	case Six:
		return "six"
	case Nine:
		return "nine"
	case Twelve:
		return "twelve"
	default:
		return fmt.Sprintf("wager(%d)", int(w))
	}
}
