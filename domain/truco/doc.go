// Package truco implements the domain logic of two-player Truco Mineiro,
// including card ranking, trick and hand resolution, wager escalation and
// score keeping up to the Queda.
//
// # Core Types
//
// Card: A playing card identified by its name and its trick-taking strength.
// Cards with the same strength tie, regardless of suit.
//
// WagerLevel: The value of a hand on the ladder Common (1), Truco (3),
// Six (6), Nine (9) and Twelve (12).
//
// Hand: One deal of three cards per side, resolved over up to three tricks.
//
// Match: Two players playing hands until one of them reaches 12 points.
//
// # Game Flow
//
// The Match asks a DecisionPort for every player action. Before choosing a
// card, the player about to move may propose a raise; the opponent answers by
// accepting, conceding (running away) or raising again. A concession ends the
// hand at the value already in effect. Otherwise the hand is played trick by
// trick until it is decided and the winner scores the hand value.
//
// # Collaborators
//
// DeckSource deals the hands, Announcer receives informational callbacks and
// Recorder keeps the result of every completed hand.
package truco
