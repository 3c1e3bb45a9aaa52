package usecase

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
	"github.com/rocketscienceinc/tictactoe-session/internal/tictactoe"
)

type reporterDep interface {
	ReportWinner(ctx context.Context, winner entity.Mark)
}

type Option func(*GameController)

// WithScoreRollback controls whether leaving a won position through JumpTo
// takes the win back out of the session score.
func WithScoreRollback(enabled bool) Option {
	return func(that *GameController) {
		that.rollbackScore = enabled
	}
}

// GameController owns the history and score of one session.
// It is not safe for concurrent use; a session drives it from a single goroutine.
type GameController struct {
	logger   *slog.Logger
	reporter reporterDep

	rollbackScore bool

	history entity.History
	score   entity.Score
	winner  entity.Mark
}

func NewGameController(logger *slog.Logger, reporter reporterDep, opts ...Option) *GameController {
	that := &GameController{
		logger:   logger.With("component", "game_controller"),
		reporter: reporter,

		rollbackScore: true,

		history: tictactoe.Reset(),
		score:   entity.NewScore(entity.Players, 0),
		winner:  entity.NoWinner,
	}

	for _, opt := range opts {
		opt(that)
	}

	return that
}

// MakeTurn places the next player's mark on cell. It reports false when the
// move was ignored: the game is won, the cell is taken or out of range.
func (that *GameController) MakeTurn(ctx context.Context, cell int) bool {
	log := that.logger.With("method", "MakeTurn", "cell", cell)

	if that.winner != entity.NoWinner {
		log.Debug("move ignored, game already won", "winner", that.winner)
		return false
	}

	player := that.history.NextPlayer()

	history, err := tictactoe.ApplyMove(that.history, cell, player)
	if err != nil {
		log.Debug("move ignored", "player", player, "error", err)
		return false
	}

	that.history = history
	that.winner = tictactoe.DetectWinner(history.Current())

	if that.winner != entity.NoWinner {
		that.score = that.score.Adjust(that.winner, 1)
		log.Info("game won", "winner", that.winner, "step", history.Step())

		that.reporter.ReportWinner(ctx, that.winner)
	}

	return true
}

// JumpTo rewinds the history to step. Moves made afterwards branch from there.
func (that *GameController) JumpTo(step int) bool {
	log := that.logger.With("method", "JumpTo", "step", step)

	history, err := tictactoe.Truncate(that.history, step)
	if err != nil {
		log.Debug("jump ignored", "error", err)
		return false
	}

	if that.rollbackScore && that.winner != entity.NoWinner && step < that.history.Step() {
		that.score = that.score.Adjust(that.winner, -1)
		log.Info("win rolled back", "winner", that.winner)
	}

	that.history = history
	that.winner = tictactoe.DetectWinner(history.Current())

	return true
}

// Reset starts a new game. The session score is kept.
func (that *GameController) Reset() {
	that.history = tictactoe.Reset()
	that.winner = entity.NoWinner

	that.logger.Debug("game reset")
}

// State returns a copy of the current game for rendering.
func (that *GameController) State() *entity.GameState {
	current := that.history.Current()

	state := &entity.GameState{
		Board:      current,
		Step:       that.history.Step(),
		History:    slices.Clone(that.history),
		NextPlayer: that.history.NextPlayer(),
		Winner:     that.winner,
		Status:     entity.StatusOngoing,
		Score:      maps.Clone(that.score),
	}

	switch {
	case that.winner != entity.NoWinner:
		state.Status = entity.StatusWon
		state.NextPlayer = entity.EmptyCell
	case current.IsFull():
		state.Status = entity.StatusDraw
		state.NextPlayer = entity.EmptyCell
	}

	return state
}
