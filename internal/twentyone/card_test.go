package twentyone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	// When: a new deck is created
	deck := NewDeck()

	// Then: it holds 52 distinct cards
	require.Len(t, deck, DeckSize)

	seen := make(map[Card]bool, DeckSize)
	for _, card := range deck {
		assert.False(t, seen[card], "duplicate %s", card)
		seen[card] = true
	}

	// And: every suit has 13 ranks
	perSuit := make(map[Suit]int)
	for _, card := range deck {
		perSuit[card.Suit]++
	}
	for suit := Clubs; suit <= Spades; suit++ {
		assert.Equal(t, 13, perSuit[suit])
	}
}

func TestRank_Points(t *testing.T) {
	expected := map[Rank]int{
		Two: 2, Three: 3, Four: 4, Five: 5, Six: 6, Seven: 7, Eight: 8, Nine: 9,
		Ten: 10, Jack: 10, Queen: 10, King: 10, Ace: 11,
	}

	for rank, points := range expected {
		assert.Equal(t, points, rank.Points(), rank.String())
	}
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "the ace of spades", Card{Suit: Spades, Rank: Ace}.String())
	assert.Equal(t, "the two of clubs", Card{Suit: Clubs, Rank: Two}.String())
	assert.Equal(t, "the queen of hearts", Card{Suit: Hearts, Rank: Queen}.String())
}
