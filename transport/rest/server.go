package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type counterRepoDep interface {
	Increment(ctx context.Context, winner entity.Mark) (entity.Tally, error)
	Tally(ctx context.Context) (entity.Tally, error)
}

// Server is the win counter HTTP service.
type Server struct {
	logger  *slog.Logger
	counter counterRepoDep
}

func New(logger *slog.Logger, counter counterRepoDep) *Server {
	return &Server{
		logger:  logger.With("component", "rest"),
		counter: counter,
	}
}

// Routes returns the handler of the counter service.
func (that *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", that.handlePing)
	mux.HandleFunc("GET /", that.handleTally)
	mux.HandleFunc("POST /{winner}", that.handleIncrement)
	mux.HandleFunc("POST /", that.handleUnknownWinner)

	return mux
}

// Start serves the counter service on port until ctx is cancelled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
