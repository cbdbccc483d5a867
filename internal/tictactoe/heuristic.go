package tictactoe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/console-games/internal/pkg"
)

// Difficulty - selects which rule ladder the computer follows.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// ParseDifficulty - accepts a difficulty name or its menu number.
func ParseDifficulty(value string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", string(Easy):
		return Easy, nil
	case "2", string(Medium):
		return Medium, nil
	case "3", string(Hard), "difficult":
		return Hard, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, value)
	}
}

// Intent - the reason behind a computer move.
type Intent int

const (
	IntentRandom Intent = iota
	IntentComplete
	IntentBlock
	IntentTakeCenter
	IntentExtend
)

func (i Intent) String() string {
	switch i {
	case IntentComplete:
		return "complete"
	case IntentBlock:
		return "block"
	case IntentTakeCenter:
		return "take-center"
	case IntentExtend:
		return "extend"
	default:
		return "random"
	}
}

// Move - a square chosen by the computer. The caller applies it.
type Move struct {
	Position Position
	Intent   Intent
}

type rule struct {
	intent Intent
	pick   func(board Board, rng pkg.RNG) (Position, bool)
}

// Rules are tried in order; a random empty square is the fallback for every level.
var ladders = map[Difficulty][]rule{
	Easy: nil,
	Medium: {
		{intent: IntentBlock, pick: blockPlayer},
	},
	Hard: {
		{intent: IntentComplete, pick: completeOwnLine},
		{intent: IntentBlock, pick: blockPlayer},
		{intent: IntentTakeCenter, pick: takeCenter},
		{intent: IntentExtend, pick: extendOwnLine},
	},
}

// SelectComputerMove - picks the computer's next square. The board must have
// at least one empty square; it is not modified.
func SelectComputerMove(board Board, difficulty Difficulty, rng pkg.RNG) Move {
	for _, r := range ladders[difficulty] {
		if position, ok := r.pick(board, rng); ok {
			return Move{Position: position, Intent: r.intent}
		}
	}

	return Move{Position: randomEmpty(board, rng), Intent: IntentRandom}
}

func completeOwnLine(board Board, rng pkg.RNG) (Position, bool) {
	return nearlyCompleteLine(board, Computer, rng)
}

func blockPlayer(board Board, rng pkg.RNG) (Position, bool) {
	return nearlyCompleteLine(board, Player, rng)
}

func takeCenter(board Board, _ pkg.RNG) (Position, bool) {
	return Center, board.At(Center) == Empty
}

// extendOwnLine - first empty square of a line holding one computer mark and nothing else.
func extendOwnLine(board Board, rng pkg.RNG) (Position, bool) {
	line, ok := pickLine(linesWith(board, Computer, 1, 2), rng)
	if !ok {
		return 0, false
	}

	return firstEmpty(board, line), true
}

// nearlyCompleteLine - the empty square of a line with two marks of the given kind.
func nearlyCompleteLine(board Board, mark Mark, rng pkg.RNG) (Position, bool) {
	line, ok := pickLine(linesWith(board, mark, 2, 1), rng)
	if !ok {
		return 0, false
	}

	return firstEmpty(board, line), true
}

func linesWith(board Board, mark Mark, marks, empties int) [][3]Position {
	var lines [][3]Position
	for _, line := range WinningLines {
		marked, empty := 0, 0
		for _, position := range line {
			switch board.At(position) {
			case mark:
				marked++
			case Empty:
				empty++
			}
		}

		if marked == marks && empty == empties {
			lines = append(lines, line)
		}
	}

	return lines
}

func pickLine(lines [][3]Position, rng pkg.RNG) ([3]Position, bool) {
	switch len(lines) {
	case 0:
		return [3]Position{}, false
	case 1:
		return lines[0], true
	default:
		return lines[rng.IntN(len(lines))], true
	}
}

func firstEmpty(board Board, line [3]Position) Position {
	for _, position := range line {
		if board.At(position) == Empty {
			return position
		}
	}

	return 0
}

func randomEmpty(board Board, rng pkg.RNG) Position {
	empty := board.EmptyPositions()

	return empty[rng.IntN(len(empty))]
}
