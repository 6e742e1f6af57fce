package deck

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/paulhankin/poker"

	"github.com/luca-patrignani/truco/domain/truco"
)

//go:embed cards.csv
var defaultTable string

// MinTableSize is the smallest table that can deal two full hands.
const MinTableSize = 2 * truco.HandSize

var ErrMalformedTable = errors.New("malformed card table")

// Table is the fixed list of cards a Deck deals from.
type Table struct {
	cards []truco.Card
}

// DefaultTable returns the embedded Truco Mineiro table (40 cards).
func DefaultTable() (*Table, error) {
	return LoadTable(strings.NewReader(defaultTable))
}

// LoadTableFile reads a card table from a CSV file.
func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open card table: %w", err)
	}
	defer f.Close()
	return LoadTable(f)
}

// LoadTable parses a card table in CSV format, one "name,strength" row per
// card. Lines starting with '#' are comments and an optional header row is
// skipped. Every name must be a legal face (rank followed by suit, e.g. "4♣"
// or "Kd") that appears only once, and the table must hold at least
// MinTableSize cards.
func LoadTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTable, err)
	}
	if len(records) > 0 && strings.EqualFold(records[0][0], "name") {
		records = records[1:]
	}

	faces := make(map[poker.Card]string, len(records))
	cards := make([]truco.Card, 0, len(records))
	for i, rec := range records {
		name := strings.TrimSpace(rec[0])
		strength, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: invalid strength %q", ErrMalformedTable, i+1, rec[1])
		}
		face, err := parseFace(name)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrMalformedTable, i+1, err)
		}
		if prev, ok := faces[face]; ok {
			return nil, fmt.Errorf("%w: row %d: %s repeats %s", ErrMalformedTable, i+1, name, prev)
		}
		faces[face] = name
		card, err := truco.NewCard(name, strength)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrMalformedTable, i+1, err)
		}
		cards = append(cards, card)
	}
	if len(cards) < MinTableSize {
		return nil, fmt.Errorf("%w: %d cards, need at least %d", ErrMalformedTable, len(cards), MinTableSize)
	}
	return &Table{cards: cards}, nil
}

// Cards returns a copy of the cards of the table.
func (t *Table) Cards() []truco.Card {
	return append([]truco.Card(nil), t.cards...)
}

// Len returns the number of cards of the table.
func (t *Table) Len() int {
	return len(t.cards)
}

// parseFace converts a card name into a French-deck face. The last rune is
// the suit (♣♦♥♠ or c d h s), the rest is the rank (A, 2-10, J, Q, K).
func parseFace(name string) (poker.Card, error) {
	var none poker.Card
	runes := []rune(name)
	if len(runes) < 2 {
		return none, fmt.Errorf("invalid card name %q", name)
	}
	var suit uint8
	switch runes[len(runes)-1] {
	case '♣', 'c', 'C':
		suit = 0
	case '♦', 'd', 'D':
		suit = 1
	case '♥', 'h', 'H':
		suit = 2
	case '♠', 's', 'S':
		suit = 3
	default:
		return none, fmt.Errorf("invalid suit in card name %q", name)
	}

	var rank uint8
	switch r := strings.ToUpper(string(runes[:len(runes)-1])); r {
	case "A":
		rank = 1
	case "J":
		rank = 11
	case "Q":
		rank = 12
	case "K":
		rank = 13
	default:
		n, err := strconv.Atoi(r)
		if err != nil || n < 2 || n > 10 {
			return none, fmt.Errorf("invalid rank in card name %q", name)
		}
		rank = uint8(n)
	}

	face, err := poker.MakeCard(poker.Suit(suit), poker.Rank(rank))
	if err != nil {
		return none, fmt.Errorf("invalid card %q: %w", name, err)
	}
	return face, nil
}
