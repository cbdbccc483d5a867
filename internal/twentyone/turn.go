package twentyone

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/pkg"
)

// Score - final total of a turn, or Bust.
type Score int

// Bust - sentinel score of a hand that went over the bust limit.
const Bust Score = -1

var ErrDeckEmpty = errors.New("deck is empty")

func (s Score) IsBust() bool {
	return s == Bust
}

// HitDecider - the external collaborator asked before every hit.
type HitDecider interface {
	Hit(hand Hand, total int) (bool, error)
}

// Decider - collaborator playing a whole round for the player.
type Decider interface {
	HitDecider
	// Dealt is called once after the initial deal; dealerUp is the dealer's face-up card.
	Dealt(hand Hand, total int, dealerUp Card)
}

// DealRandomCard - moves a uniformly random card from the deck to the hand.
func DealRandomCard(deck *Deck, hand *Hand, rng pkg.RNG) error {
	cards := *deck
	if len(cards) == 0 {
		return ErrDeckEmpty
	}

	index := rng.IntN(len(cards))
	card := cards[index]

	*deck = append(cards[:index], cards[index+1:]...)
	*hand = append(*hand, card)

	return nil
}

// DealInitialHands - deals player, dealer, player, dealer.
func DealInitialHands(deck *Deck, player, dealer *Hand, rng pkg.RNG) error {
	for _, hand := range []*Hand{player, dealer, player, dealer} {
		if err := DealRandomCard(deck, hand, rng); err != nil {
			return fmt.Errorf("failed to deal initial hands: %w", err)
		}
	}

	return nil
}

// PlayerTurn - deals cards while the decider asks for them. Going over the bust
// limit ends the turn with Bust. An exhausted deck ends the turn as a stay.
func PlayerTurn(deck *Deck, hand *Hand, options Options, rng pkg.RNG, decider HitDecider) (Score, error) {
	total := HandValue(*hand, options)
	if total > options.BustLimit {
		return Bust, nil
	}

	for {
		hit, err := decider.Hit(*hand, total)
		if err != nil {
			return 0, fmt.Errorf("failed to ask for a hit: %w", err)
		}

		if !hit {
			return Score(total), nil
		}

		if err = DealRandomCard(deck, hand, rng); err != nil {
			if errors.Is(err, ErrDeckEmpty) {
				return Score(total), nil
			}

			return 0, err
		}

		total = HandValue(*hand, options)
		if total > options.BustLimit {
			return Bust, nil
		}
	}
}

// DealerTurn - fixed policy: draw while below the dealer limit.
func DealerTurn(deck *Deck, hand *Hand, options Options, rng pkg.RNG) Score {
	total := HandValue(*hand, options)

	for total < options.DealerLimit && total <= options.BustLimit {
		if err := DealRandomCard(deck, hand, rng); err != nil {
			break
		}

		total = HandValue(*hand, options)
	}

	if total > options.BustLimit {
		return Bust
	}

	return Score(total)
}

// DetermineWinner - compares two non-bust scores.
func DetermineWinner(playerScore, dealerScore Score) entity.Outcome {
	switch {
	case playerScore > dealerScore:
		return entity.OutcomePlayer
	case playerScore < dealerScore:
		return entity.OutcomeOpponent
	default:
		return entity.OutcomeTie
	}
}

// Round - everything the shell needs to render a finished game.
type Round struct {
	Winner      entity.Outcome
	Busted      bool
	Player      Hand
	Dealer      Hand
	PlayerScore Score
	DealerScore Score
}

// PlayRound - plays one game from a fresh deck. A bust short-circuits the
// round with the other side as winner.
func PlayRound(options Options, rng pkg.RNG, decider Decider) (Round, error) {
	deck := NewDeck()
	var player, dealer Hand

	if err := DealInitialHands(&deck, &player, &dealer, rng); err != nil {
		return Round{}, err
	}

	decider.Dealt(player, HandValue(player, options), dealer[1])

	playerScore, err := PlayerTurn(&deck, &player, options, rng, decider)
	if err != nil {
		return Round{}, fmt.Errorf("failed to play player turn: %w", err)
	}

	round := Round{Player: player, PlayerScore: playerScore}
	if playerScore.IsBust() {
		round.Winner = entity.OutcomeOpponent
		round.Busted = true
		round.Dealer = dealer
		round.DealerScore = Score(HandValue(dealer, options))

		return round, nil
	}

	round.DealerScore = DealerTurn(&deck, &dealer, options, rng)
	round.Dealer = dealer

	if round.DealerScore.IsBust() {
		round.Winner = entity.OutcomePlayer
		round.Busted = true

		return round, nil
	}

	round.Winner = DetermineWinner(playerScore, round.DealerScore)

	return round, nil
}
