package game

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

// FreeRow and FreeCol locate the free cell on every card.
const (
	FreeRow = 2
	FreeCol = 2
)

// Card is a 5x5 bingo grid in row-major order. The center cell is the
// free cell and holds 0. Columns map to the B/I/N/G/O bands.
type Card [5][5]int

// cardBands is the on-disk card shape: each band is one column of five
// numbers, top to bottom, with N[2] == 0 for the free cell.
type cardBands struct {
	CardID int    `json:"card_id"`
	B      [5]int `json:"B"`
	I      [5]int `json:"I"`
	N      [5]int `json:"N"`
	G      [5]int `json:"G"`
	O      [5]int `json:"O"`
}

//go:embed cards.json
var cardsJSON []byte

var catalog []Card

// DefaultCard is the placeholder grid shown when a card number falls
// outside the catalog. It matches catalog card #47.
var DefaultCard = Card{
	{3, 17, 43, 54, 63},
	{15, 20, 32, 58, 61},
	{5, 18, 0, 50, 72},
	{7, 25, 34, 46, 67},
	{2, 23, 45, 59, 64},
}

func init() {
	var err error
	catalog, err = loadCatalog(cardsJSON)
	if err != nil {
		panic(fmt.Sprintf("bingo card catalog: %v", err))
	}
}

// loadCatalog decodes and validates the band-format card file.
func loadCatalog(data []byte) ([]Card, error) {
	var raw []cardBands
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal cards: %w", err)
	}
	cards := make([]Card, 0, len(raw))
	for i, cb := range raw {
		if cb.CardID != i+1 {
			return nil, fmt.Errorf("card %d: unexpected card_id %d", i+1, cb.CardID)
		}
		c := cb.card()
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("card %d: %w", cb.CardID, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// card transposes column bands into the row-major grid.
func (cb cardBands) card() Card {
	var c Card
	bands := [5][5]int{cb.B, cb.I, cb.N, cb.G, cb.O}
	for col := 0; col < 5; col++ {
		for row := 0; row < 5; row++ {
			c[row][col] = bands[col][row]
		}
	}
	return c
}

func (c Card) validate() error {
	seen := make(map[int]bool, 24)
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			n := c[row][col]
			if row == FreeRow && col == FreeCol {
				if n != 0 {
					return fmt.Errorf("free cell holds %d", n)
				}
				continue
			}
			lo := col*15 + 1
			if n < lo || n > lo+14 {
				return fmt.Errorf("cell (%d,%d)=%d outside band %d-%d", row, col, n, lo, lo+14)
			}
			if seen[n] {
				return fmt.Errorf("duplicate number %d", n)
			}
			seen[n] = true
		}
	}
	return nil
}

// CatalogSize reports how many cards the catalog holds.
func CatalogSize() int {
	return len(catalog)
}

// GetCard returns the card for a 1-based card number. The second return
// is false when the number falls outside the catalog; callers fall back
// to DefaultCard for display.
func GetCard(cardNumber int) (Card, bool) {
	if cardNumber < 1 || cardNumber > len(catalog) {
		return Card{}, false
	}
	return catalog[cardNumber-1], true
}

// Cell returns the number at a row-major cell index 0-24.
func (c Card) Cell(index int) int {
	return c[index/5][index%5]
}

// Contains reports whether n appears on the card. The free-cell 0 is
// not a number a player can mark.
func (c Card) Contains(n int) bool {
	if n == 0 {
		return false
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if c[row][col] == n {
				return true
			}
		}
	}
	return false
}

// LetterFor returns the B/I/N/G/O band letter for a called number, or
// "" when the number is out of range.
func LetterFor(n int) string {
	switch {
	case n >= 1 && n <= 15:
		return "B"
	case n >= 16 && n <= 30:
		return "I"
	case n >= 31 && n <= 45:
		return "N"
	case n >= 46 && n <= 60:
		return "G"
	case n >= 61 && n <= 75:
		return "O"
	default:
		return ""
	}
}
