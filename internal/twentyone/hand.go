package twentyone

import (
	"errors"
	"fmt"
)

const (
	DefaultBustLimit   = 21
	DefaultDealerLimit = 17
)

var (
	ErrInvalidBustLimit   = errors.New("bust limit must be a positive integer")
	ErrInvalidDealerLimit = errors.New("dealer limit must be positive and less than the bust limit")
)

// Options - limits fixed for the duration of a match.
type Options struct {
	BustLimit   int `json:"bust_limit"`
	DealerLimit int `json:"dealer_limit"`
}

func DefaultOptions() Options {
	return Options{
		BustLimit:   DefaultBustLimit,
		DealerLimit: DefaultDealerLimit,
	}
}

func (that Options) Validate() error {
	if that.BustLimit < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidBustLimit, that.BustLimit)
	}

	if that.DealerLimit < 1 || that.DealerLimit >= that.BustLimit {
		return fmt.Errorf("%w: %d (bust limit %d)", ErrInvalidDealerLimit, that.DealerLimit, that.BustLimit)
	}

	return nil
}

// Hand - cards held by the player or the dealer, in the order dealt.
type Hand []Card

func (that Hand) Aces() int {
	aces := 0
	for _, card := range that {
		if card.IsAce() {
			aces++
		}
	}

	return aces
}

// HandValue - total of the hand. Every ace starts at 11 and drops to 1, one at
// a time, while the hand would otherwise go over the bust limit.
func HandValue(hand Hand, options Options) int {
	nonAceTotal := 0
	for _, card := range hand {
		if !card.IsAce() {
			nonAceTotal += card.Points()
		}
	}

	aces := hand.Aces()
	margin := options.BustLimit - nonAceTotal
	aceTotal := aces * Ace.Points()

	for softened := 0; aceTotal > margin && softened < aces; softened++ {
		aceTotal -= 10
	}

	return nonAceTotal + aceTotal
}
