package ledger

import "github.com/luca-patrignani/truco/domain/truco"

// Block records one completed hand.
type Block struct {
	Index     int              `json:"index"`
	Timestamp int64            `json:"timestamp"`
	PrevHash  string           `json:"prev_hash"`
	Hash      string           `json:"hash"`
	Hand      truco.HandResult `json:"hand"`
	Metadata  Metadata         `json:"metadata"`
}

// Metadata ties a block to its match and carries the score after the hand.
type Metadata struct {
	MatchID string `json:"match_id"`
	ScoreA  int    `json:"score_a"`
	ScoreB  int    `json:"score_b"`
}
