package truco

import (
	"errors"
	"fmt"
)

// ErrContractViolation marks a DecisionPort or caller that broke the rules of
// the engine, e.g. an out-of-range card index or a raise past Twelve.
// The match is aborted when it occurs.
var ErrContractViolation = errors.New("contract violation")

// WinningScore is the score that ends a match (the Queda).
const WinningScore = 12

// Side identifies one of the two seats of a match.
type Side int

const (
	SideA Side = iota
	SideB
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// Outcome is the result of a trick or of a whole hand.
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomeA
	OutcomeB
)

// WonBy returns the Outcome in which s wins.
func WonBy(s Side) Outcome {
	if s == SideA {
		return OutcomeA
	}
	return OutcomeB
}

// Winner returns the winning side, or false on a tie.
func (o Outcome) Winner() (Side, bool) {
	switch o {
	case OutcomeA:
		return SideA, true
	case OutcomeB:
		return SideB, true
	default:
		return SideA, false
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeA:
		return "A"
	case OutcomeB:
		return "B"
	case OutcomeTie:
		return "tie"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Kind tells how a player takes decisions.
type Kind string

const (
	Human     Kind = "human"
	Automated Kind = "auto"
)

type Player struct {
	Name  string
	Kind  Kind
	Score int
	Side  Side
}

func (p Player) String() string {
	return fmt.Sprintf("%s (%d)", p.Name, p.Score)
}

// Response is the answer to a raise proposal.
type Response string

const (
	Accept  Response = "accept"
	Concede Response = "concede"
	Reraise Response = "reraise"
)

// HandResult summarises a completed hand. Conceded is set when the hand ended
// because Conceder ran away; TieBroken is set when the tricks left the hand
// level and the tie-break rule picked the winner.
type HandResult struct {
	ID        string     `json:"id"`
	Number    int        `json:"number"`
	Opener    Side       `json:"opener"`
	Outcomes  []Outcome  `json:"outcomes"`
	Value     WagerLevel `json:"value"`
	Winner    Side       `json:"winner"`
	Points    int        `json:"points"`
	Conceded  bool       `json:"conceded"`
	Conceder  Side       `json:"conceder"`
	TieBroken bool       `json:"tie_broken"`
}
