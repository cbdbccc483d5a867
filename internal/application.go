package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/rocketscienceinc/console-games/internal/config"
	"github.com/rocketscienceinc/console-games/internal/console"
	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/pkg"
	"github.com/rocketscienceinc/console-games/internal/play"
	"github.com/rocketscienceinc/console-games/internal/repository"
	"github.com/rocketscienceinc/console-games/internal/repository/storage"
	"github.com/rocketscienceinc/console-games/internal/twentyone"
	"github.com/rocketscienceinc/console-games/internal/usecase"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrGamePanicked = errors.New("game panicked")
)

// RunApp - runs one console game on stdin/stdout until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, game string) error {
	log := logger.With("component", "app", "game", game)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	matchRepo, closeRepo, err := newMatchRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	matches := usecase.NewMatchManager(logger, matchRepo, conf.Match.Target, conf.Match.TieStreak)
	cons := console.New(os.Stdin, os.Stdout, console.Settings{
		Color: !conf.Console.NoColor,
		Clear: !conf.Console.NoClear,
		Font:  conf.Console.Font,
	})
	shell := play.NewShell(logger, cons, matches, pkg.DefaultRNG())

	program, err := NewGame(shell, conf, game)
	if err != nil {
		return err
	}

	// the game blocks on stdin, so a signal cannot interrupt it directly
	errCh := make(chan error, 1)
	go func() {
		errCh <- runGame(ctx, program)
	}()

	select {
	case err = <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("%s failed: %w", game, err)
		}

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// runGame - runs program, turning a panic into an error so Main can report it.
func runGame(ctx context.Context, program play.Game) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrGamePanicked, r)
		}
	}()

	return program.Run(ctx)
}

// NewGame - builds the program for a game name.
func NewGame(shell *play.Shell, conf *config.Config, game string) (play.Game, error) {
	switch game {
	case entity.GameTicTacToe:
		return play.NewTicTacToe(shell, conf.Difficulty), nil
	case entity.GameTwentyOne:
		return play.NewTwentyOne(shell, twentyone.Options{
			BustLimit:   conf.TwentyOne.BustLimit,
			DealerLimit: conf.TwentyOne.DealerLimit,
		}), nil
	case entity.GameRPSSL:
		return play.NewRPSSL(shell), nil
	case entity.GameLoan:
		return play.NewLoan(shell), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownGame, game)
	}
}

// newMatchRepository - Redis when enabled, otherwise an in-memory store.
func newMatchRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.MatchRepository, func(), error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryMatchRepository(), func() {}, nil
	}

	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisAddrString := conf.Redis.GetRedisAddr()

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeRepo := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewMatchRepository(redisStorage.Connection, conf.Redis.TTL), closeRepo, nil
}
