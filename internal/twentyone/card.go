package twentyone

import "fmt"

type Suit int

const (
	Clubs Suit = iota
	Hearts
	Diamonds
	Spades
)

var suitNames = [...]string{"clubs", "hearts", "diamonds", "spades"}

func (s Suit) String() string {
	return suitNames[s]
}

type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = [...]string{
	"two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "jack", "queen", "king", "ace",
}

func (r Rank) String() string {
	return rankNames[r]
}

// Points - fixed value of the rank. Aces report 11; HandValue decides how they count.
func (r Rank) Points() int {
	switch {
	case r == Ace:
		return 11
	case r >= Ten:
		return 10
	default:
		return int(r) + 2
	}
}

type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func (c Card) IsAce() bool {
	return c.Rank == Ace
}

func (c Card) Points() int {
	return c.Rank.Points()
}

func (c Card) String() string {
	return fmt.Sprintf("the %s of %s", c.Rank, c.Suit)
}

const DeckSize = 52

// Deck - undealt cards. Order carries no meaning; cards are drawn at random.
type Deck []Card

// NewDeck - all 52 cards, each (suit, rank) exactly once.
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			deck = append(deck, Card{Suit: suit, Rank: rank})
		}
	}

	return deck
}
