package truco

import "fmt"

// checkCardIndex verifies that idx addresses one of the n cards in a hand.
func checkCardIndex(idx int, n int) error {
	if n == 0 {
		return fmt.Errorf("%w: no cards left to play", ErrContractViolation)
	}
	if idx < 0 || idx >= n {
		return fmt.Errorf("%w: card index %d out of range [0, %d)", ErrContractViolation, idx, n)
	}
	return nil
}

// checkResponse verifies that r is a legal answer to a raise to proposed.
func checkResponse(r Response, proposed WagerLevel) error {
	switch r {
	case Accept, Concede:
		return nil
	case Reraise:
		if proposed.Capped() {
			return fmt.Errorf("%w: cannot raise past %s", ErrContractViolation, proposed)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown response %q", ErrContractViolation, string(r))
	}
}

// LegalResponses returns the answers allowed to a raise to proposed.
func LegalResponses(proposed WagerLevel) []Response {
	if proposed.Capped() {
		return []Response{Accept, Concede}
	}
	return []Response{Accept, Concede, Reraise}
}
