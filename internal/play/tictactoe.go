package play

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/tictactoe"
)

const (
	msgChooseDifficulty = "Please select one of the following difficulty levels:\n1) easy\n2) medium\n3) difficult\n"
	msgMarks            = "(Player marks with 'X'. Computer marks with 'O'.)\n"
)

// TicTacToe - the player (X) against the computer (O); the player always moves first.
type TicTacToe struct {
	*Shell

	// difficulty is asked for every match when empty
	difficulty tictactoe.Difficulty
}

func NewTicTacToe(shell *Shell, difficulty string) *TicTacToe {
	game := &TicTacToe{Shell: shell}

	if difficulty != "" {
		parsed, err := tictactoe.ParseDifficulty(difficulty)
		if err != nil {
			shell.logger.Warn("ignoring configured difficulty", "error", err)
		}

		game.difficulty = parsed
	}

	return game
}

func (that *TicTacToe) Run(ctx context.Context) error {
	return that.loop(ctx, "tic tac toe", that.playOnce)
}

func (that *TicTacToe) playOnce(ctx context.Context) error {
	matchType, err := that.chooseMatchType()
	if err != nil {
		return err
	}

	difficulty, err := that.chooseDifficulty()
	if err != nil {
		return err
	}

	return that.playMatch(ctx, matchType, matchPlan{
		game:      entity.GameTicTacToe,
		opponent:  "computer",
		pause:     true,
		offerQuit: true,
		round: func(_ context.Context, _ *entity.Match) (entity.Outcome, error) {
			board, outcome, err := that.playGame(difficulty)
			if err != nil {
				return entity.OutcomeNone, err
			}

			that.drawBoard(board)

			return outcome, nil
		},
	})
}

func (that *TicTacToe) chooseDifficulty() (tictactoe.Difficulty, error) {
	if that.difficulty != "" {
		return that.difficulty, nil
	}

	choice, err := that.console.Choose(msgChooseDifficulty, msgInvalid, "1", "2", "3")
	if err != nil {
		return "", err
	}

	return tictactoe.ParseDifficulty(choice)
}

// playGame - alternates player and computer moves until a line is made or the board fills.
func (that *TicTacToe) playGame(difficulty tictactoe.Difficulty) (tictactoe.Board, entity.Outcome, error) {
	var board tictactoe.Board

	for {
		that.drawBoard(board)

		position, err := that.askPosition(board)
		if err != nil {
			return board, entity.OutcomeNone, err
		}

		if board, err = board.Place(position, tictactoe.Player); err != nil {
			return board, entity.OutcomeNone, fmt.Errorf("failed to place player mark: %w", err)
		}

		if tictactoe.HasWinner(board) {
			return board, entity.OutcomePlayer, nil
		}

		if board.IsFull() {
			return board, entity.OutcomeTie, nil
		}

		move := tictactoe.SelectComputerMove(board, difficulty, that.rng)
		that.logger.Debug("computer move", "position", move.Position, "intent", move.Intent.String())

		if board, err = board.Place(move.Position, tictactoe.Computer); err != nil {
			return board, entity.OutcomeNone, fmt.Errorf("failed to place computer mark: %w", err)
		}

		if tictactoe.HasWinner(board) {
			return board, entity.OutcomeOpponent, nil
		}
	}
}

func (that *TicTacToe) askPosition(board tictactoe.Board) (tictactoe.Position, error) {
	empty := board.EmptyPositions()
	options := make([]string, 0, len(empty))

	for _, position := range empty {
		options = append(options, strconv.Itoa(int(position)))
	}

	choice, err := that.console.Choose(squarePrompt(options)+msgMarks, msgInvalid, options...)
	if err != nil {
		return 0, err
	}

	position, err := strconv.Atoi(choice)
	if err != nil {
		return 0, fmt.Errorf("failed to parse square %q: %w", choice, err)
	}

	return tictactoe.Position(position), nil
}

// squarePrompt - "Please select 1, 2, or 3." style list of the empty squares.
func squarePrompt(options []string) string {
	var prompt string

	switch len(options) {
	case 1:
		prompt = options[0]
	case 2:
		prompt = options[0] + " or " + options[1]
	default:
		prompt = strings.Join(options[:len(options)-1], ", ") + ", or " + options[len(options)-1]
	}

	return "Please select " + prompt + ".\n"
}

func (that *TicTacToe) drawBoard(board tictactoe.Board) {
	that.console.Clear()

	var builder strings.Builder

	builder.WriteString("\n")

	for row := 0; row < 3; row++ {
		if row > 0 {
			builder.WriteString("-----+-----+-----\n")
		}

		first := tictactoe.Position(row*3 + 1)

		builder.WriteString("     |     |\n")
		fmt.Fprintf(&builder, "  %s  |  %s  |  %s\n",
			that.mark(board.At(first)), that.mark(board.At(first+1)), that.mark(board.At(first+2)))
		builder.WriteString("     |     |\n")
	}

	that.console.Println(builder.String())
}

func (that *TicTacToe) mark(mark tictactoe.Mark) string {
	switch mark {
	case tictactoe.Player:
		return that.console.Colorize(mark.String(), color.Cyan)
	case tictactoe.Computer:
		return that.console.Colorize(mark.String(), color.Yellow)
	default:
		return mark.String()
	}
}
