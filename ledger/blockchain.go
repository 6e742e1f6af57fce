package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/truco/domain/truco"
)

type Blockchain struct {
	mu      sync.RWMutex
	matchID string
	blocks  []Block
	scores  [2]int
}

// NewBlockchain creates a new blockchain for matchID with an initialized
// genesis block. The genesis block has index 0 and previous hash "0".
func NewBlockchain(matchID string) *Blockchain {
	bc := &Blockchain{
		matchID: matchID,
		blocks:  make([]Block, 0),
	}

	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
		Metadata:  Metadata{MatchID: matchID},
	}
	genesis.Hash = calculateHash(genesis)
	bc.blocks = append(bc.blocks, genesis)

	return bc
}

// Record appends the result of a completed hand as a new block, keeping the
// running score of both sides in the block metadata. The block is validated
// against the previous one before it is appended.
func (bc *Blockchain) Record(result truco.HandResult) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if result.Points < 0 {
		return fmt.Errorf("invalid block: negative points %d", result.Points)
	}
	latest := bc.blocks[len(bc.blocks)-1]

	scores := bc.scores
	scores[result.Winner] += result.Points

	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Hand:      result,
		Metadata: Metadata{
			MatchID: bc.matchID,
			ScoreA:  scores[truco.SideA],
			ScoreB:  scores[truco.SideB],
		},
	}

	newBlock.Hash = calculateHash(newBlock)

	if err := validateBlock(newBlock, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}

	bc.blocks = append(bc.blocks, newBlock)
	bc.scores = scores

	return nil
}

// GetLatest returns the most recently added block in the blockchain.
func (bc *Blockchain) GetLatest() (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return Block{}, fmt.Errorf("blockchain is empty")
	}

	return bc.blocks[len(bc.blocks)-1], nil
}

// GetByIndex retrieves a block by its index in the chain. Returns an error if the index
// is out of range.
func (bc *Blockchain) GetByIndex(index int) (*Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return nil, fmt.Errorf("index out of range")
	}

	b := bc.blocks[index]
	return &b, nil
}

// Len returns the number of blocks, genesis included.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return len(bc.blocks)
}

// Hands returns the recorded hand results in order of play.
func (bc *Blockchain) Hands() []truco.HandResult {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	hands := make([]truco.HandResult, 0, len(bc.blocks)-1)
	for _, b := range bc.blocks[1:] {
		hands = append(hands, b.Hand)
	}
	return hands
}

// Verify validates the integrity of the entire blockchain by checking the genesis block
// and verifying each subsequent block's hash, index continuity, and previous hash linkage.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return fmt.Errorf("empty blockchain")
	}

	if bc.blocks[0].PrevHash != "0" || bc.blocks[0].Hash != calculateHash(bc.blocks[0]) {
		return fmt.Errorf("invalid genesis block")
	}

	for i := 1; i < len(bc.blocks); i++ {
		current := bc.blocks[i]
		previous := bc.blocks[i-1]

		if err := validateBlock(current, previous); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}

	return nil
}

// validateBlock verifies that a block is valid relative to the previous block. It checks
// index continuity, previous hash linkage, current hash validity and that the running
// score grows by exactly the points of the hand.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}

	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}

	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}

	gained := (current.Metadata.ScoreA - previous.Metadata.ScoreA) + (current.Metadata.ScoreB - previous.Metadata.ScoreB)
	if gained != current.Hand.Points {
		return fmt.Errorf("score moved by %d, hand is worth %d", gained, current.Hand.Points)
	}

	return nil
}

// calculateHash computes the SHA256 hash of a block based on its index, timestamp,
// previous hash, hand and metadata. The hand and metadata are JSON marshaled before hashing.
func calculateHash(block Block) string {
	handBytes, _ := json.Marshal(block.Hand)
	metaBytes, _ := json.Marshal(block.Metadata)

	data := fmt.Sprintf("%d%d%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(handBytes),
		string(metaBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
