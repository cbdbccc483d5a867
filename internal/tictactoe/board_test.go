package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = Player
	o = Computer
	e = Empty
)

func TestBoard_Place(t *testing.T) {
	t.Run("Places a mark and leaves the original untouched", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: the player marks position 1
		next, err := board.Place(1, Player)

		// Then: the new board has the mark and the old one is still empty
		require.NoError(t, err)
		assert.Equal(t, Player, next.At(1))
		assert.Equal(t, Board{}, board)
	})

	t.Run("Error on position already occupied", func(t *testing.T) {
		// Given: a board where position 5 is taken by the computer
		board := Board{e, e, e, e, o, e, e, e, e}

		// When: the player tries to mark position 5
		next, err := board.Place(5, Player)

		// Then: ErrPositionOccupied is returned and nothing changes
		require.ErrorIs(t, err, ErrPositionOccupied)
		assert.Equal(t, board, next)
	})

	t.Run("Error on invalid position", func(t *testing.T) {
		var board Board

		for _, position := range []Position{0, -1, 10} {
			_, err := board.Place(position, Player)
			assert.ErrorIs(t, err, ErrInvalidPosition)
		}
	})
}

func TestBoard_EmptyPositions(t *testing.T) {
	// Given: a board with three marks
	board := Board{x, e, o, e, x, e, e, e, e}

	// When: listing the empty squares
	empty := board.EmptyPositions()

	// Then: the remaining squares are listed in order
	assert.Equal(t, []Position{2, 4, 6, 7, 8, 9}, empty)
	assert.Equal(t, 3, board.MovesMade())
	assert.False(t, board.IsFull())
}

func TestHasWinner(t *testing.T) {
	t.Run("Empty board has no winner", func(t *testing.T) {
		assert.False(t, HasWinner(Board{}))
	})

	t.Run("Row completed by player", func(t *testing.T) {
		board := Board{x, x, x, o, o, e, e, e, e}

		assert.True(t, HasWinner(board))
		assert.Equal(t, Player, Winner(board))
	})

	t.Run("Diagonal completed by computer", func(t *testing.T) {
		board := Board{x, x, o, e, o, e, o, e, x}

		assert.True(t, HasWinner(board))
		assert.Equal(t, Computer, Winner(board))
	})

	t.Run("Column completed by player", func(t *testing.T) {
		board := Board{x, o, e, x, o, e, x, e, e}

		assert.Equal(t, Player, Winner(board))
	})

	t.Run("Board without a completed line", func(t *testing.T) {
		board := Board{x, o, x, x, o, o, o, x, x}

		assert.False(t, HasWinner(board))
		assert.True(t, board.IsFull())
	})

	t.Run("Mixed line is not a win", func(t *testing.T) {
		board := Board{x, x, o, e, e, e, e, e, e}

		assert.False(t, HasWinner(board))
	})
}

func TestMark_String(t *testing.T) {
	assert.Equal(t, "X", Player.String())
	assert.Equal(t, "O", Computer.String())
	assert.Equal(t, " ", Empty.String())
}
