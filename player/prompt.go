package player

import "github.com/pterm/pterm"

// TermPrompter asks questions on the terminal with pterm.
type TermPrompter struct{}

func (TermPrompter) Ask(question string) (string, error) {
	pterm.Println()
	return pterm.DefaultInteractiveTextInput.WithDefaultText(question).Show()
}

func (TermPrompter) Reject(reason string) {
	pterm.Error.Println(reason)
}
