package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/console-games/internal/pkg"
)

// fixedRNG always answers val modulo n.
type fixedRNG struct{ val int }

func (r fixedRNG) IntN(n int) int { return r.val % n }

func TestSelectComputerMove_AlwaysEmpty(t *testing.T) {
	boards := []Board{
		{},
		{x, e, e, e, e, e, e, e, e},
		{x, o, x, e, o, e, e, x, e},
		{x, o, x, x, o, o, o, x, e},
		{e, x, o, x, o, x, x, o, x},
	}

	for _, difficulty := range []Difficulty{Easy, Medium, Hard} {
		for _, board := range boards {
			for seed := range 9 {
				move := SelectComputerMove(board, difficulty, fixedRNG{val: seed})

				require.Equal(t, Empty, board.At(move.Position), "difficulty %s board %v", difficulty, board)
			}
		}
	}
}

func TestSelectComputerMove_DoesNotMutateBoard(t *testing.T) {
	// Given: a board mid-game
	board := Board{x, e, e, e, o, e, e, e, x}
	snapshot := board

	// When: the computer chooses a move
	_ = SelectComputerMove(board, Hard, pkg.DefaultRNG())

	// Then: the board is unchanged
	assert.Equal(t, snapshot, board)
}

func TestSelectComputerMove_Hard(t *testing.T) {
	t.Run("Completes its own line before blocking", func(t *testing.T) {
		// Given: computer has 4 and 5, player threatens 1-2-3
		board := Board{x, x, e, o, o, e, x, e, e}

		for seed := range 4 {
			// When: the hard computer moves
			move := SelectComputerMove(board, Hard, fixedRNG{val: seed})

			// Then: it always wins on 6
			assert.Equal(t, Move{Position: 6, Intent: IntentComplete}, move)
		}
	})

	t.Run("Blocks the player when it cannot win", func(t *testing.T) {
		// Given: player holds 1 and 2, computer holds 5 only
		board := Board{x, x, e, e, o, e, e, e, e}

		// When: the hard computer moves
		move := SelectComputerMove(board, Hard, fixedRNG{val: 0})

		// Then: it blocks on 3
		assert.Equal(t, Move{Position: 3, Intent: IntentBlock}, move)
	})

	t.Run("Takes the center when nothing is threatened", func(t *testing.T) {
		board := Board{x, e, e, e, e, e, e, e, e}

		move := SelectComputerMove(board, Hard, fixedRNG{val: 0})

		assert.Equal(t, Move{Position: Center, Intent: IntentTakeCenter}, move)
	})

	t.Run("Extends a line holding one computer mark", func(t *testing.T) {
		// Given: player has the center and a corner, computer holds 9
		board := Board{x, e, e, e, x, e, e, e, o}

		// When: the hard computer moves (1-5-9 is mixed, so there is nothing to block)
		move := SelectComputerMove(board, Hard, fixedRNG{val: 0})

		// Then: the first qualifying line is 7-8-9 and its first empty square is 7
		assert.Equal(t, Move{Position: 7, Intent: IntentExtend}, move)
	})

	t.Run("Tie-break between qualifying lines uses the rng", func(t *testing.T) {
		// Given: computer can win on 3 (1-2-3) or on 7 (1-4-7)
		board := Board{o, o, e, o, x, x, e, x, e}

		// When: the rng selects the first or the second line
		first := SelectComputerMove(board, Hard, fixedRNG{val: 0})
		second := SelectComputerMove(board, Hard, fixedRNG{val: 1})

		// Then: each completes the corresponding line
		assert.Equal(t, Position(3), first.Position)
		assert.Equal(t, Position(7), second.Position)
		assert.Equal(t, IntentComplete, second.Intent)
	})

	t.Run("Falls back to a random square", func(t *testing.T) {
		// Given: no lines to complete, block or extend and the center is taken
		board := Board{x, o, x, x, o, o, o, x, e}

		move := SelectComputerMove(board, Hard, fixedRNG{val: 0})

		assert.Equal(t, Move{Position: 9, Intent: IntentRandom}, move)
	})
}

func TestSelectComputerMove_Medium(t *testing.T) {
	t.Run("Blocks the player", func(t *testing.T) {
		board := Board{x, e, e, x, o, e, e, e, e}

		move := SelectComputerMove(board, Medium, fixedRNG{val: 0})

		assert.Equal(t, Move{Position: 7, Intent: IntentBlock}, move)
	})

	t.Run("Never completes its own line", func(t *testing.T) {
		// Given: computer could win on 3 and the player has no threat
		board := Board{o, o, e, x, e, e, e, e, x}

		for seed := range 6 {
			move := SelectComputerMove(board, Medium, fixedRNG{val: seed})

			assert.Equal(t, IntentRandom, move.Intent)
		}
	})
}

func TestSelectComputerMove_Easy(t *testing.T) {
	// Given: a board with five empty squares
	board := Board{x, o, e, e, x, e, o, e, e}
	empty := board.EmptyPositions()

	// When: the rng walks every index
	for i, want := range empty {
		move := SelectComputerMove(board, Easy, fixedRNG{val: i})

		// Then: the easy computer takes the matching empty square
		assert.Equal(t, Move{Position: want, Intent: IntentRandom}, move)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := map[string]Difficulty{
		"1":         Easy,
		"easy":      Easy,
		"2":         Medium,
		"Medium":    Medium,
		"3":         Hard,
		"hard":      Hard,
		"difficult": Hard,
	}

	for input, want := range tests {
		got, err := ParseDifficulty(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseDifficulty("impossible")
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}
