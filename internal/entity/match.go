package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/console-games/internal/apperror"
)

// Outcome - result of a single game or of a whole match.
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomePlayer   Outcome = "player"
	OutcomeOpponent Outcome = "opponent"
	OutcomeTie      Outcome = "tie"
)

const (
	StatusOngoing   = "ongoing"
	StatusFinished  = "finished"
	StatusAbandoned = "abandoned"
)

const (
	SingleType     = "single"
	BestOfFiveType = "best-of-five"
)

const (
	GameTicTacToe = "tictactoe"
	GameTwentyOne = "twentyone"
	GameRPSSL     = "rpssl"
	GameLoan      = "loan"
)

// DefaultTarget - decisive games needed to finish a best-of-five match.
const DefaultTarget = 5

var (
	ErrUnknownOutcome     = errors.New("unknown outcome")
	ErrUnknownMatchStatus = errors.New("unknown match status")
	ErrUnknownMatchType   = errors.New("unknown match type")
)

// Match - tally of one single game or best-of-five series against the computer.
// Ties are not counted towards Target.
type Match struct {
	ID              string  `json:"id"`
	Game            string  `json:"game"`
	Type            string  `json:"type"`
	Target          int     `json:"target"`
	PlayerWins      int     `json:"player_wins"`
	OpponentWins    int     `json:"opponent_wins"`
	ConsecutiveTies int     `json:"consecutive_ties"`
	Status          string  `json:"status"`
	Winner          Outcome `json:"winner,omitempty"`
}

func NewMatch(id, game, matchType string, target int) *Match {
	if matchType == SingleType || target < 1 {
		target = 1
	}

	return &Match{
		ID:     id,
		Game:   game,
		Type:   matchType,
		Target: target,
		Status: StatusOngoing,
	}
}

// ParseMatchType - maps the "1) Single game / 2) Best of five" menu to a match type.
func ParseMatchType(choice string) (string, error) {
	switch choice {
	case "1", SingleType:
		return SingleType, nil
	case "2", BestOfFiveType:
		return BestOfFiveType, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMatchType, choice)
	}
}

// Record - adds the outcome of one game and finishes the match when it is decided.
func (that *Match) Record(outcome Outcome) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	switch outcome {
	case OutcomePlayer:
		that.PlayerWins++
		that.ConsecutiveTies = 0
	case OutcomeOpponent:
		that.OpponentWins++
		that.ConsecutiveTies = 0
	case OutcomeTie:
		that.ConsecutiveTies++
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutcome, outcome)
	}

	that.UpdateMatchState(outcome)

	return nil
}

func (that *Match) UpdateMatchState(last Outcome) {
	switch {
	// a single game ends after one result, ties included
	case !that.IsBestOf():
		that.Status = StatusFinished
		that.Winner = last
	case that.IsDecided():
		that.Status = StatusFinished
		that.Winner = that.Leader()
	default:
		that.Status = StatusOngoing
	}
}

// IsDecided - decisive games have reached the target.
func (that *Match) IsDecided() bool {
	return that.DecisiveGames() >= that.Target
}

func (that *Match) DecisiveGames() int {
	return that.PlayerWins + that.OpponentWins
}

// Leader - side with more wins so far, or OutcomeTie when level.
func (that *Match) Leader() Outcome {
	switch {
	case that.PlayerWins > that.OpponentWins:
		return OutcomePlayer
	case that.PlayerWins < that.OpponentWins:
		return OutcomeOpponent
	default:
		return OutcomeTie
	}
}

// Abandon - ends the match without a winner.
func (that *Match) Abandon() {
	that.Status = StatusAbandoned
	that.Winner = OutcomeNone
}

func (that *Match) IsBestOf() bool {
	return that.Type == BestOfFiveType
}

func (that *Match) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Match) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Match) IsAbandoned() bool {
	return that.Status == StatusAbandoned
}

func (that *Match) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrMatchFinished
	case that.IsAbandoned():
		return apperror.ErrMatchAbandoned
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMatchStatus, that.Status)
	}
}
