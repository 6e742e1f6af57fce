package truco

// DecisionPort supplies the choices of one player. Implementations must
// return a valid card index and must never answer Reraise to a proposal of
// Twelve: the engine treats both as a contract violation.
type DecisionPort interface {
	// ChooseCard returns an index into cards.
	ChooseCard(p Player, cards []Card) (int, error)
	// ProposeTruco reports whether p raises the hand to proposed before playing.
	ProposeTruco(p Player, proposed WagerLevel) (bool, error)
	// RespondToTruco answers the raise of proposer to proposed.
	RespondToTruco(responder, proposer Player, proposed WagerLevel) (Response, error)
}

// DeckSource deals a fresh pair of hands drawn without replacement.
type DeckSource interface {
	DealHands(count int) ([]Card, []Card, error)
}

// Recorder keeps the result of every completed hand.
type Recorder interface {
	Record(result HandResult) error
}

// Announcer receives informational notifications about the match. None of
// them are decision points.
type Announcer interface {
	OpeningPlayer(p Player)
	CardPlayed(p Player, c Card)
	TrickResolved(trick int, outcome Outcome)
	TrucoProposed(proposer Player, proposed WagerLevel)
	TrucoAnswered(responder Player, r Response, proposed WagerLevel)
	Concession(conceder, winner Player, points int)
	HandScore(result HandResult, winner Player)
	MatchScore(a, b Player)
	MatchWinner(winner *Player)
}

// NopAnnouncer ignores every notification. Embed it to implement only the
// callbacks of interest.
type NopAnnouncer struct{}

func (NopAnnouncer) OpeningPlayer(Player)                       {}
func (NopAnnouncer) CardPlayed(Player, Card)                    {}
func (NopAnnouncer) TrickResolved(int, Outcome)                 {}
func (NopAnnouncer) TrucoProposed(Player, WagerLevel)           {}
func (NopAnnouncer) TrucoAnswered(Player, Response, WagerLevel) {}
func (NopAnnouncer) Concession(Player, Player, int)             {}
func (NopAnnouncer) HandScore(HandResult, Player)               {}
func (NopAnnouncer) MatchScore(Player, Player)                  {}
func (NopAnnouncer) MatchWinner(*Player)                        {}
