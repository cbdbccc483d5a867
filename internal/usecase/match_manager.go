package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/pkg"
)

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

// MatchManager - keeps the tally of single games and best-of-five series.
// Matches are removed from the repository as soon as they end.
type MatchManager struct {
	logger    *slog.Logger
	matchRepo matchRepo

	target    int
	tieStreak int
}

func NewMatchManager(logger *slog.Logger, matchRepo matchRepo, target, tieStreak int) *MatchManager {
	if target < 1 {
		target = entity.DefaultTarget
	}

	return &MatchManager{
		logger:    logger.With("component", "match-manager"),
		matchRepo: matchRepo,
		target:    target,
		tieStreak: tieStreak,
	}
}

func (that *MatchManager) StartMatch(ctx context.Context, game, matchType string) (*entity.Match, error) {
	matchID, err := pkg.GenerateMatchID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate match id: %w", err)
	}

	match := entity.NewMatch(matchID, game, matchType, that.target)
	if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	that.logger.Debug("match started", "id", match.ID, "game", game, "type", matchType)

	return match, nil
}

// RecordOutcome - adds one game result. A match that becomes finished is deleted.
func (that *MatchManager) RecordOutcome(ctx context.Context, id string, outcome entity.Outcome) (*entity.Match, error) {
	match, err := that.getMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = match.Record(outcome); err != nil {
		return nil, fmt.Errorf("failed to record outcome: %w", err)
	}

	if match.IsFinished() {
		that.deleteMatch(ctx, match)

		return match, nil
	}

	if err = that.updateMatch(ctx, match); err != nil {
		return nil, err
	}

	return match, nil
}

// TieStreakReached - the player should be offered to quit.
func (that *MatchManager) TieStreakReached(match *entity.Match) bool {
	return that.tieStreak > 0 && match.IsBestOf() && match.ConsecutiveTies >= that.tieStreak
}

// Abandon - ends an ongoing match without a winner.
func (that *MatchManager) Abandon(ctx context.Context, id string) (*entity.Match, error) {
	match, err := that.getMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = match.ConfirmOngoingState(); err != nil {
		return nil, fmt.Errorf("failed to abandon match: %w", err)
	}

	match.Abandon()
	that.deleteMatch(ctx, match)

	return match, nil
}

// EndMatch - drops whatever is left of a match. Missing matches are fine.
func (that *MatchManager) EndMatch(ctx context.Context, id string) error {
	err := that.matchRepo.DeleteByID(ctx, id)
	if err != nil && !errors.Is(err, apperror.ErrMatchNotFound) {
		return fmt.Errorf("failed to end match: %w", err)
	}

	return nil
}

func (that *MatchManager) getMatchByID(ctx context.Context, id string) (*entity.Match, error) {
	match, err := that.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

func (that *MatchManager) updateMatch(ctx context.Context, match *entity.Match) error {
	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}

	return nil
}

func (that *MatchManager) deleteMatch(ctx context.Context, match *entity.Match) {
	log := that.logger.With("method", "deleteMatch")

	if err := that.matchRepo.DeleteByID(ctx, match.ID); err != nil {
		log.Error("failed to delete match", "id", match.ID, "error", err)

		return
	}

	log.Debug("match deleted", "id", match.ID, "status", match.Status, "winner", match.Winner)
}
