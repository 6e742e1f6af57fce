// Package player provides the decision sources of a Truco match: Human asks
// a person through a Prompter and keeps asking until the answer is valid,
// Random draws every decision uniformly from the legal options.
package player
