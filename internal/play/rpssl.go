package play

import (
	"context"

	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/rpssl"
)

const msgChooseWeapon = "Choose your weapon!\n1)rock\n2)paper\n3)scissors\n4)spock\n5)lizard\n"

// RPSSL - rock, paper, scissors, Spock, lizard against a random computer.
type RPSSL struct {
	*Shell
}

func NewRPSSL(shell *Shell) *RPSSL {
	return &RPSSL{Shell: shell}
}

func (that *RPSSL) Run(ctx context.Context) error {
	return that.loop(ctx, "rock paper scissors\nspock lizard", that.playOnce)
}

func (that *RPSSL) playOnce(ctx context.Context) error {
	matchType, err := that.chooseMatchType()
	if err != nil {
		return err
	}

	that.console.Clear()

	return that.playMatch(ctx, matchType, matchPlan{
		game:     entity.GameRPSSL,
		opponent: "computer",
		round: func(_ context.Context, _ *entity.Match) (entity.Outcome, error) {
			return that.playGame()
		},
	})
}

func (that *RPSSL) playGame() (entity.Outcome, error) {
	choice, err := that.console.Choose(msgChooseWeapon, msgInvalid, "1", "2", "3", "4", "5")
	if err != nil {
		return entity.OutcomeNone, err
	}

	player, err := rpssl.ParseWeapon(choice)
	if err != nil {
		return entity.OutcomeNone, err
	}

	computer := rpssl.RandomWeapon(that.rng)

	that.console.Clear()
	that.console.Printf("You chose %s. Computer chose %s.\n\n", player, computer)

	return rpssl.Winner(player, computer), nil
}
