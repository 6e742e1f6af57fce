package player

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/luca-patrignani/truco/domain/truco"
)

// Prompter asks a person a question and reports rejected answers.
type Prompter interface {
	Ask(question string) (string, error)
	Reject(reason string)
}

// Human turns the answers of a person into decisions. Invalid answers are
// rejected and the question is asked again until a valid one arrives; only
// errors of the Prompter itself are returned.
type Human struct {
	prompter Prompter
}

func NewHuman(p Prompter) *Human {
	return &Human{prompter: p}
}

// ChooseCard accepts the 1-based position of the card or its name.
func (h *Human) ChooseCard(p truco.Player, cards []truco.Card) (int, error) {
	if len(cards) == 0 {
		return 0, fmt.Errorf("no cards to choose from")
	}
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = fmt.Sprintf("[%d] %s", i+1, c)
	}
	question := fmt.Sprintf("%s, your cards: %s. Which one do you play?", p.Name, strings.Join(names, "  "))
	for {
		answer, err := h.prompter.Ask(question)
		if err != nil {
			return 0, err
		}
		if idx, ok := parseCardChoice(answer, cards); ok {
			return idx, nil
		}
		h.prompter.Reject(fmt.Sprintf("%q is not one of your cards, answer with a number from 1 to %d", strings.TrimSpace(answer), len(cards)))
	}
}

func (h *Human) ProposeTruco(p truco.Player, proposed truco.WagerLevel) (bool, error) {
	question := fmt.Sprintf("%s, raise the hand to %s (%d points)? [y/n]", p.Name, proposed, proposed.Points())
	for {
		answer, err := h.prompter.Ask(question)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		h.prompter.Reject("answer y or n")
	}
}

func (h *Human) RespondToTruco(responder, proposer truco.Player, proposed truco.WagerLevel) (truco.Response, error) {
	options := "[a]ccept, [r]un away"
	if next, err := proposed.Next(); err == nil {
		options += fmt.Sprintf(", raise to [%s]", next)
	}
	question := fmt.Sprintf("%s, %s raised to %s (%d points): %s?", responder.Name, proposer.Name, proposed, proposed.Points(), options)
	for {
		answer, err := h.prompter.Ask(question)
		if err != nil {
			return "", err
		}
		if r, ok := parseResponse(answer, proposed); ok {
			return r, nil
		}
		h.prompter.Reject("that is not one of the options")
	}
}

func parseCardChoice(answer string, cards []truco.Card) (int, bool) {
	answer = strings.TrimSpace(answer)
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(cards) {
			return n - 1, true
		}
		return 0, false
	}
	for i, c := range cards {
		if strings.EqualFold(c.Name(), answer) {
			return i, true
		}
	}
	return 0, false
}

func parseResponse(answer string, proposed truco.WagerLevel) (truco.Response, bool) {
	var r truco.Response
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "a", "accept", "yes", "y":
		r = truco.Accept
	case "r", "run", "concede", "no", "n":
		r = truco.Concede
	default:
		next, err := proposed.Next()
		if err != nil {
			return "", false
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case next.String(), "raise", "reraise":
			r = truco.Reraise
		default:
			return "", false
		}
	}
	return r, true
}
