package truco

// Resolve compares the cards played by side A and side B in a trick.
func Resolve(a, b Card) Outcome {
	switch {
	case a.Stronger(b):
		return OutcomeA
	case b.Stronger(a):
		return OutcomeB
	default:
		return OutcomeTie
	}
}
