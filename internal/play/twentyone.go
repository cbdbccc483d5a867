package play

import (
	"context"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/twentyone"
)

const (
	msgModifyLimit    = "Please enter 'y/yes' or 'n/no' to indicate whether you wish to set a limit other than %d.\n"
	msgSetLimit       = "Please enter a positive integer for the new limit.\n"
	msgSetDealerLimit = "Please enter a new dealer limit that's less than the bust limit (otherwise it's not fair).\n"
	msgHitOrStay      = "Do you want another card? ('y/yes' or 'n/no')\n"
)

// TwentyOne - the player against a dealer who draws up to a fixed limit.
type TwentyOne struct {
	*Shell

	// defaults every match starts from
	defaults twentyone.Options
}

func NewTwentyOne(shell *Shell, defaults twentyone.Options) *TwentyOne {
	if err := defaults.Validate(); err != nil {
		shell.logger.Warn("using default twenty-one limits", "error", err)

		defaults = twentyone.DefaultOptions()
	}

	return &TwentyOne{Shell: shell, defaults: defaults}
}

func (that *TwentyOne) Run(ctx context.Context) error {
	return that.loop(ctx, "twenty one", that.playOnce)
}

func (that *TwentyOne) playOnce(ctx context.Context) error {
	matchType, err := that.chooseMatchType()
	if err != nil {
		return err
	}

	options, err := that.chooseOptions()
	if err != nil {
		return err
	}

	that.logger.Debug("twenty-one limits", "bust_limit", options.BustLimit, "dealer_limit", options.DealerLimit)

	return that.playMatch(ctx, matchType, matchPlan{
		game:     entity.GameTwentyOne,
		opponent: "dealer",
		pause:    true,
		round: func(_ context.Context, _ *entity.Match) (entity.Outcome, error) {
			that.console.Clear()

			round, err := twentyone.PlayRound(options, that.rng, &consoleDecider{shell: that.Shell, options: options})
			if err != nil {
				return entity.OutcomeNone, fmt.Errorf("failed to play round: %w", err)
			}

			that.showRound(round, options)

			return round.Winner, nil
		},
	})
}

// chooseOptions - limits reset to the defaults for every match; the player may override both.
func (that *TwentyOne) chooseOptions() (twentyone.Options, error) {
	options := that.defaults

	modify, err := that.console.YesNo(fmt.Sprintf(msgModifyLimit, options.BustLimit), msgInvalid)
	if err != nil || !modify {
		return options, err
	}

	retry := strings.ToUpper(msgSetLimit)

	options.BustLimit, err = that.console.PositiveInt(msgSetLimit, retry)
	// the dealer needs at least one limit below the bust limit
	for err == nil && options.BustLimit < 2 {
		options.BustLimit, err = that.console.PositiveInt(retry, retry)
	}

	if err != nil {
		return options, err
	}

	options.DealerLimit, err = that.console.PositiveInt(msgSetDealerLimit, retry)
	for err == nil && options.Validate() != nil {
		options.DealerLimit, err = that.console.PositiveInt(msgSetDealerLimit, retry)
	}

	return options, err
}

// showRound - a bust is announced on its own, otherwise both hands are compared.
func (that *TwentyOne) showRound(round twentyone.Round, options twentyone.Options) {
	that.console.Clear()

	if round.Busted {
		busted := "Dealer"
		if round.PlayerScore.IsBust() {
			busted = "Player"
			that.showPlayerCards(round.Player, options)
		}

		that.console.Printf("%s busted.\n", busted)

		return
	}

	that.showPlayerCards(round.Player, options)
	that.showCards(round.Dealer, options, "Dealer has the following cards: ", "Dealer's")
}

func (that *Shell) showPlayerCards(hand twentyone.Hand, options twentyone.Options) {
	that.showCards(hand, options, "You have the following cards: ", "Your")
}

func (that *Shell) showCards(hand twentyone.Hand, options twentyone.Options, intro, owner string) {
	that.console.Println(intro)

	for _, card := range hand {
		that.console.Printf("The %s of %s.\n", card.Rank, card.Suit)
	}

	that.console.Printf("%s total is %d.\n\n", owner, twentyone.HandValue(hand, options))
}

// consoleDecider - asks the player whether to hit. The hand is shown again after every hit.
type consoleDecider struct {
	shell   *Shell
	options twentyone.Options
	hits    int
}

func (that *consoleDecider) Dealt(hand twentyone.Hand, _ int, dealerUp twentyone.Card) {
	that.shell.showPlayerCards(hand, that.options)
	that.shell.console.Printf("Dealer is showing %s.\n", dealerUp)
}

func (that *consoleDecider) Hit(hand twentyone.Hand, _ int) (bool, error) {
	if that.hits > 0 {
		that.shell.showPlayerCards(hand, that.options)
	}

	hit, err := that.shell.console.YesNo(msgHitOrStay, msgInvalid)
	if err != nil {
		return false, err
	}

	if hit {
		that.hits++
	}

	return hit, nil
}
