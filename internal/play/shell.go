// Package play drives the console games: prompts, rendering and the match flow
// around the engines.
package play

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gookit/color"

	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/rocketscienceinc/console-games/internal/console"
	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/pkg"
	"github.com/rocketscienceinc/console-games/internal/usecase"
)

const (
	bannerVictory = "awesome you won"
	bannerDefeat  = "darn you lost"
	bannerTie     = "it was a tie"
	bannerGoodbye = "thanks for playing"
)

const (
	msgChooseGameType = "Welcome player! Choose one of the following options:\n1) Single game\n2) Best of five\n"
	msgInvalid        = "I'm afraid that's not a valid choice. Please select one of the options listed above.\n"
	msgContinue       = "Press enter to continue."
	msgPlayAgain      = "Would you like to play again (y/n)? "
	msgManyTies       = "That's a lot of ties. Enter 'y' or 'yes' if you want to continue playing or anything else to quit. "
)

// Game - one console program.
type Game interface {
	Run(ctx context.Context) error
}

// Shell - what every game needs to talk to the player and keep the tally.
type Shell struct {
	logger  *slog.Logger
	console *console.Console
	matches *usecase.MatchManager
	rng     pkg.RNG
}

func NewShell(logger *slog.Logger, cons *console.Console, matches *usecase.MatchManager, rng pkg.RNG) *Shell {
	return &Shell{
		logger:  logger,
		console: cons,
		matches: matches,
		rng:     rng,
	}
}

// matchPlan - game-specific parts of a match.
type matchPlan struct {
	game     string
	opponent string
	// pause waits for enter between best-of-five games
	pause bool
	// offerQuit lets the player stop after a streak of ties
	offerQuit bool
	round     func(ctx context.Context, match *entity.Match) (entity.Outcome, error)
}

// loop - repeats play until the player declines another match. Closed input
// ends the program like a "no".
func (that *Shell) loop(ctx context.Context, welcome string, play func(ctx context.Context) error) error {
	for {
		that.console.Clear()
		that.console.Banner(welcome)

		if err := play(ctx); err != nil {
			if errors.Is(err, apperror.ErrInputClosed) {
				that.goodbye()

				return nil
			}

			return err
		}

		again, err := that.console.Confirm(msgPlayAgain)
		if err != nil && !errors.Is(err, apperror.ErrInputClosed) {
			return err
		}

		if !again {
			that.goodbye()

			return nil
		}
	}
}

func (that *Shell) chooseMatchType() (string, error) {
	choice, err := that.console.Choose(msgChooseGameType, msgInvalid, "1", "2")
	if err != nil {
		return "", err
	}

	return entity.ParseMatchType(choice)
}

// playMatch - starts a match of matchType and plays rounds until it ends.
// An abandoned match says goodbye instead of announcing a winner.
func (that *Shell) playMatch(ctx context.Context, matchType string, plan matchPlan) error {
	log := that.logger.With("method", "playMatch", "game", plan.game)

	started, err := that.matches.StartMatch(ctx, plan.game, matchType)
	if err != nil {
		return fmt.Errorf("failed to start match: %w", err)
	}

	id := started.ID

	defer func() {
		if endErr := that.matches.EndMatch(context.WithoutCancel(ctx), id); endErr != nil {
			log.Warn("failed to end match", "id", id, "error", endErr)
		}
	}()

	match, err := that.runMatch(ctx, started, plan)
	if err != nil {
		return err
	}

	log.Info("match ended", "id", id, "status", match.Status, "winner", match.Winner,
		"player_wins", match.PlayerWins, "opponent_wins", match.OpponentWins)

	if match.IsAbandoned() {
		that.goodbye()

		return nil
	}

	that.announceResult(match.Winner)

	return nil
}

func (that *Shell) runMatch(ctx context.Context, match *entity.Match, plan matchPlan) (*entity.Match, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("match interrupted: %w", err)
		}

		outcome, err := plan.round(ctx, match)
		if err != nil {
			return nil, err
		}

		id := match.ID
		if match, err = that.matches.RecordOutcome(ctx, id, outcome); err != nil {
			return nil, fmt.Errorf("failed to record outcome of match %s: %w", id, err)
		}

		if !match.IsBestOf() {
			return match, nil
		}

		that.console.Println(that.gameResult(outcome, plan.opponent))

		if plan.offerQuit && that.matches.TieStreakReached(match) {
			keepPlaying, err := that.console.Confirm(msgManyTies)
			if err != nil {
				return nil, err
			}

			if !keepPlaying {
				return that.matches.Abandon(ctx, match.ID)
			}
		}

		that.console.Printf("Current tally is player: %d, %s: %d.\n\n", match.PlayerWins, plan.opponent, match.OpponentWins)

		if match.IsFinished() {
			return match, nil
		}

		if plan.pause {
			if _, err = that.console.Prompt(msgContinue); err != nil {
				return nil, err
			}
		}
	}
}

// gameResult - plain line for one game of a best-of-five match.
func (that *Shell) gameResult(outcome entity.Outcome, opponent string) string {
	switch outcome {
	case entity.OutcomePlayer:
		return that.console.Colorize("Player won.\n", color.Green)
	case entity.OutcomeOpponent:
		return that.console.Colorize(capitalize(opponent)+" won.\n", color.Red)
	default:
		return "Tie.\n"
	}
}

func (that *Shell) announceResult(winner entity.Outcome) {
	switch winner {
	case entity.OutcomePlayer:
		that.console.Banner(bannerVictory)
	case entity.OutcomeOpponent:
		that.console.Banner(bannerDefeat)
	default:
		that.console.Banner(bannerTie)
	}
}

func (that *Shell) goodbye() {
	that.console.Clear()
	that.console.Banner(bannerGoodbye)
}

func capitalize(word string) string {
	if word == "" || word[0] < 'a' || word[0] > 'z' {
		return word
	}

	return string(word[0]-'a'+'A') + word[1:]
}
