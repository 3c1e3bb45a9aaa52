package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-session/internal/config"
	"github.com/rocketscienceinc/tictactoe-session/internal/repository"
	"github.com/rocketscienceinc/tictactoe-session/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-session/internal/transport/counter"
	"github.com/rocketscienceinc/tictactoe-session/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-session/transport/rest"
	"github.com/rocketscienceinc/tictactoe-session/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	counterRepo, closeCounter, err := newCounterRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeCounter()

	reporter := counter.New(logger, conf.Reporter.Endpoint, conf.Reporter.Timeout)
	defer reporter.Close()

	newGame := func(sessionID string) websocket.GameController {
		return usecase.NewGameController(
			logger.With("session", sessionID),
			reporter,
			usecase.WithScoreRollback(!conf.Game.KeepScoreOnJump),
		)
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort, "counter", conf.Counter.Backend)
		restServer := rest.New(logger, counterRepo)
		if httpErr := restServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, newGame)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// newCounterRepository builds the configured counter store and the function that releases it.
func newCounterRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.CounterRepository, func(), error) {
	if conf.Counter.Backend != config.CounterBackendRedis {
		return repository.NewMemoryCounterRepository(), func() {}, nil
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	counterRepo, err := repository.NewRedisCounterRepository(ctx, redisStorage, conf.Counter.Key)
	if err != nil {
		closeStorage()
		return nil, nil, fmt.Errorf("could not create counter: %w", err)
	}

	return counterRepo, closeStorage, nil
}
