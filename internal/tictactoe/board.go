package tictactoe

import (
	"errors"
	"fmt"
)

// Mark - the value held by a single square.
type Mark int

const (
	Empty Mark = iota
	Player
	Computer
)

// Position - square identifier, numbered 1 to 9 left to right, top to bottom.
type Position int

const (
	FirstPosition Position = 1
	LastPosition  Position = 9
	Center        Position = 5
)

var (
	ErrInvalidPosition  = errors.New("invalid position")
	ErrPositionOccupied = errors.New("position is already occupied")

	WinningLines = [8][3]Position{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
		{1, 5, 9},
		{3, 5, 7},
	}
)

func (m Mark) String() string {
	switch m {
	case Player:
		return "X"
	case Computer:
		return "O"
	default:
		return " "
	}
}

// Board - a 3x3 grid. The zero value is an empty board.
type Board [9]Mark

func (that Board) At(position Position) Mark {
	return that[position-1]
}

// Place - returns a copy of the board with mark placed on position.
// The receiver is never modified.
func (that Board) Place(position Position, mark Mark) (Board, error) {
	if position < FirstPosition || position > LastPosition {
		return that, fmt.Errorf("%w: %d", ErrInvalidPosition, position)
	}

	if that.At(position) != Empty {
		return that, fmt.Errorf("%w: %d", ErrPositionOccupied, position)
	}

	next := that
	next[position-1] = mark

	return next, nil
}

// EmptyPositions - lists the empty squares in ascending order.
func (that Board) EmptyPositions() []Position {
	positions := make([]Position, 0, len(that))
	for i, mark := range that {
		if mark == Empty {
			positions = append(positions, Position(i+1))
		}
	}

	return positions
}

func (that Board) MovesMade() int {
	return len(that) - len(that.EmptyPositions())
}

func (that Board) IsFull() bool {
	return that.MovesMade() == len(that)
}

// Winner - returns the mark owning a completed line, or Empty.
func Winner(board Board) Mark {
	for _, line := range WinningLines {
		a, b, c := board.At(line[0]), board.At(line[1]), board.At(line[2])
		if a != Empty && a == b && b == c {
			return a
		}
	}

	return Empty
}

func HasWinner(board Board) bool {
	return Winner(board) != Empty
}
