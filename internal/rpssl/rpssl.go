// Package rpssl implements rock, paper, scissors, Spock, lizard.
package rpssl

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/pkg"
)

// Weapon - numbered the way the menu offers them, starting at 1.
type Weapon int

const (
	Rock Weapon = iota + 1
	Paper
	Scissors
	Spock
	Lizard
)

var ErrUnknownWeapon = errors.New("unknown weapon")

// Weapons - menu order.
var Weapons = []Weapon{Rock, Paper, Scissors, Spock, Lizard}

var beats = map[Weapon][2]Weapon{
	Rock:     {Scissors, Lizard},
	Paper:    {Rock, Spock},
	Scissors: {Paper, Lizard},
	Spock:    {Rock, Scissors},
	Lizard:   {Paper, Spock},
}

func (w Weapon) String() string {
	switch w {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	case Spock:
		return "Spock"
	case Lizard:
		return "lizard"
	default:
		return fmt.Sprintf("weapon(%d)", int(w))
	}
}

func (w Weapon) Beats(other Weapon) bool {
	defeated := beats[w]

	return defeated[0] == other || defeated[1] == other
}

// ParseWeapon - accepts exactly one of the menu numbers "1" to "5".
func ParseWeapon(choice string) (Weapon, error) {
	if len(choice) != 1 || choice[0] < '1' || choice[0] > '5' {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWeapon, choice)
	}

	return Weapon(choice[0] - '0'), nil
}

func RandomWeapon(rng pkg.RNG) Weapon {
	return Weapons[rng.IntN(len(Weapons))]
}

// Winner - outcome from the player's point of view.
func Winner(player, computer Weapon) entity.Outcome {
	switch {
	case player.Beats(computer):
		return entity.OutcomePlayer
	case player == computer:
		return entity.OutcomeTie
	default:
		return entity.OutcomeOpponent
	}
}
