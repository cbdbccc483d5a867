package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/repository"
)

var errRedisDown = errors.New("redis down")

type mockMatchRepo struct {
	mock.Mock
}

func (m *mockMatchRepo) CreateOrUpdate(ctx context.Context, match *entity.Match) error {
	args := m.Called(ctx, match)

	return args.Error(0)
}

func (m *mockMatchRepo) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	args := m.Called(ctx, id)

	match, _ := args.Get(0).(*entity.Match)

	return match, args.Error(1)
}

func (m *mockMatchRepo) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestMatchManager_StartMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a new ongoing match", func(t *testing.T) {
		// Given: a repository that accepts the match
		repo := &mockMatchRepo{}
		repo.On("CreateOrUpdate", mock.Anything, mock.AnythingOfType("*entity.Match")).Return(nil).Once()
		manager := NewMatchManager(newTestLogger(), repo, 5, 3)

		// When: a best-of-five match is started
		match, err := manager.StartMatch(ctx, entity.GameTicTacToe, entity.BestOfFiveType)

		// Then: the match is ongoing with the configured target
		require.NoError(t, err)
		assert.NotEmpty(t, match.ID)
		assert.Equal(t, 5, match.Target)
		assert.True(t, match.IsOngoing())
		repo.AssertExpectations(t)
	})

	t.Run("Repository failure is returned", func(t *testing.T) {
		repo := &mockMatchRepo{}
		repo.On("CreateOrUpdate", mock.Anything, mock.Anything).Return(errRedisDown).Once()
		manager := NewMatchManager(newTestLogger(), repo, 5, 3)

		match, err := manager.StartMatch(ctx, entity.GameRPSSL, entity.SingleType)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, match)
	})
}

func TestMatchManager_RecordOutcome(t *testing.T) {
	ctx := context.Background()

	t.Run("Ongoing match is updated", func(t *testing.T) {
		// Given: a stored best-of-five match
		repo := &mockMatchRepo{}
		stored := entity.NewMatch("1", entity.GameRPSSL, entity.BestOfFiveType, 5)
		repo.On("GetByID", mock.Anything, "1").Return(stored, nil).Once()
		repo.On("CreateOrUpdate", mock.Anything, stored).Return(nil).Once()
		manager := NewMatchManager(newTestLogger(), repo, 5, 3)

		// When: the player wins a game
		match, err := manager.RecordOutcome(ctx, "1", entity.OutcomePlayer)

		// Then: the win is stored and the match goes on
		require.NoError(t, err)
		assert.Equal(t, 1, match.PlayerWins)
		assert.True(t, match.IsOngoing())
		repo.AssertExpectations(t)
	})

	t.Run("Finished match is deleted", func(t *testing.T) {
		// Given: a single-game match
		repo := &mockMatchRepo{}
		stored := entity.NewMatch("2", entity.GameTicTacToe, entity.SingleType, 5)
		repo.On("GetByID", mock.Anything, "2").Return(stored, nil).Once()
		repo.On("DeleteByID", mock.Anything, "2").Return(nil).Once()
		manager := NewMatchManager(newTestLogger(), repo, 5, 3)

		// When: the game is tied
		match, err := manager.RecordOutcome(ctx, "2", entity.OutcomeTie)

		// Then: the match is finished as a tie and removed, never updated
		require.NoError(t, err)
		assert.True(t, match.IsFinished())
		assert.Equal(t, entity.OutcomeTie, match.Winner)
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Delete failure does not fail the result", func(t *testing.T) {
		repo := &mockMatchRepo{}
		stored := entity.NewMatch("3", entity.GameTwentyOne, entity.SingleType, 5)
		repo.On("GetByID", mock.Anything, "3").Return(stored, nil).Once()
		repo.On("DeleteByID", mock.Anything, "3").Return(errRedisDown).Once()
		manager := NewMatchManager(newTestLogger(), repo, 5, 3)

		match, err := manager.RecordOutcome(ctx, "3", entity.OutcomeOpponent)

		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeOpponent, match.Winner)
	})

	t.Run("Missing match", func(t *testing.T) {
		repo := &mockMatchRepo{}
		repo.On("GetByID", mock.Anything, "4").Return(nil, apperror.ErrMatchNotFound).Once()
		manager := NewMatchManager(newTestLogger(), repo, 5, 3)

		_, err := manager.RecordOutcome(ctx, "4", entity.OutcomePlayer)

		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
	})

	t.Run("Finished match rejects more results", func(t *testing.T) {
		repo := &mockMatchRepo{}
		stored := entity.NewMatch("5", entity.GameRPSSL, entity.SingleType, 5)
		require.NoError(t, stored.Record(entity.OutcomePlayer))
		repo.On("GetByID", mock.Anything, "5").Return(stored, nil).Once()
		manager := NewMatchManager(newTestLogger(), repo, 5, 3)

		_, err := manager.RecordOutcome(ctx, "5", entity.OutcomePlayer)

		require.ErrorIs(t, err, apperror.ErrMatchFinished)
	})
}

func TestMatchManager_BestOfFive(t *testing.T) {
	// Given: a manager backed by the in-memory repository
	ctx := context.Background()
	manager := NewMatchManager(newTestLogger(), repository.NewMemoryMatchRepository(), 5, 3)

	match, err := manager.StartMatch(ctx, entity.GameTwentyOne, entity.BestOfFiveType)
	require.NoError(t, err)

	// When: three ties and five decisive games are recorded
	outcomes := []entity.Outcome{
		entity.OutcomeTie, entity.OutcomeTie, entity.OutcomeTie,
		entity.OutcomePlayer, entity.OutcomeOpponent, entity.OutcomePlayer,
		entity.OutcomeOpponent, entity.OutcomeOpponent,
	}

	for i, outcome := range outcomes {
		match, err = manager.RecordOutcome(ctx, match.ID, outcome)
		require.NoError(t, err)

		if i == 2 {
			assert.True(t, manager.TieStreakReached(match))
		}
	}

	// Then: the dealer wins 3-2 and the match is gone from the repository
	assert.True(t, match.IsFinished())
	assert.Equal(t, entity.OutcomeOpponent, match.Winner)
	assert.Equal(t, 2, match.PlayerWins)
	assert.Equal(t, 3, match.OpponentWins)
	assert.False(t, manager.TieStreakReached(match))

	_, err = manager.RecordOutcome(ctx, match.ID, entity.OutcomePlayer)
	require.ErrorIs(t, err, apperror.ErrMatchNotFound)
}

func TestMatchManager_Abandon(t *testing.T) {
	ctx := context.Background()
	manager := NewMatchManager(newTestLogger(), repository.NewMemoryMatchRepository(), 5, 3)

	// Given: an ongoing best-of-five match
	match, err := manager.StartMatch(ctx, entity.GameTicTacToe, entity.BestOfFiveType)
	require.NoError(t, err)

	// When: the match is abandoned
	abandoned, err := manager.Abandon(ctx, match.ID)

	// Then: it has no winner and ending it again is harmless
	require.NoError(t, err)
	assert.True(t, abandoned.IsAbandoned())
	assert.Equal(t, entity.OutcomeNone, abandoned.Winner)
	require.NoError(t, manager.EndMatch(ctx, match.ID))
}

func TestMatchManager_EndMatch(t *testing.T) {
	ctx := context.Background()

	repo := &mockMatchRepo{}
	repo.On("DeleteByID", mock.Anything, "9").Return(errRedisDown).Once()
	manager := NewMatchManager(newTestLogger(), repo, 5, 3)

	err := manager.EndMatch(ctx, "9")

	require.ErrorIs(t, err, errRedisDown)
}
