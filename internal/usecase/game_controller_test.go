package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-session/mocks/usecase"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// playMoves applies cells in order and fails the test if one is ignored.
func playMoves(t *testing.T, ctx context.Context, controller *GameController, cells ...int) {
	t.Helper()

	for _, cell := range cells {
		require.True(t, controller.MakeTurn(ctx, cell), "cell %d", cell)
	}
}

func TestNewGameController(t *testing.T) {
	// When: a new session starts
	controller := NewGameController(newTestLogger(), mockedUseCase.NewMockreporterDep(t))

	// Then: the board is empty, X is next and both scores are zero
	state := controller.State()

	assert.Equal(t, entity.Snapshot{}, state.Board)
	assert.Equal(t, 0, state.Step)
	assert.Equal(t, entity.PlayerX, state.NextPlayer)
	assert.Equal(t, entity.NoWinner, state.Winner)
	assert.Equal(t, entity.StatusOngoing, state.Status)
	assert.Equal(t, entity.Score{entity.PlayerX: 0, entity.PlayerY: 0}, state.Score)
}

func TestGameController_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Players alternate", func(t *testing.T) {
		// Given: a new game
		controller := NewGameController(newTestLogger(), mockedUseCase.NewMockreporterDep(t))

		// When: two moves are made
		playMoves(t, ctx, controller, 4, 0)

		// Then: X holds the center, Y the corner and X is next again
		state := controller.State()
		assert.Equal(t, entity.PlayerX, state.Board[4])
		assert.Equal(t, entity.PlayerY, state.Board[0])
		assert.Equal(t, 2, state.Step)
		assert.Equal(t, entity.PlayerX, state.NextPlayer)
		assert.Len(t, state.History, 3)
	})

	t.Run("Occupied cell is ignored", func(t *testing.T) {
		// Given: X holds cell 0
		controller := NewGameController(newTestLogger(), mockedUseCase.NewMockreporterDep(t))
		playMoves(t, ctx, controller, 0)
		before := controller.State()

		// When: Y clicks the same cell
		applied := controller.MakeTurn(ctx, 0)

		// Then: nothing changes
		assert.False(t, applied)
		assert.Equal(t, before, controller.State())
	})

	t.Run("Out of range cell is ignored", func(t *testing.T) {
		controller := NewGameController(newTestLogger(), mockedUseCase.NewMockreporterDep(t))

		assert.False(t, controller.MakeTurn(ctx, 9))
		assert.False(t, controller.MakeTurn(ctx, -1))
		assert.Equal(t, 0, controller.State().Step)
	})

	t.Run("Win updates score and reports once", func(t *testing.T) {
		// Given: a reporter expecting exactly one report for X
		reporter := mockedUseCase.NewMockreporterDep(t)
		reporter.EXPECT().
			ReportWinner(mock.Anything, entity.PlayerX).
			Return().
			Once()

		controller := NewGameController(newTestLogger(), reporter)

		// When: X completes the top row
		playMoves(t, ctx, controller, 0, 3, 1, 4, 2)

		// Then: the game is won and X scores
		state := controller.State()
		assert.Equal(t, entity.StatusWon, state.Status)
		assert.Equal(t, entity.PlayerX, state.Winner)
		assert.Equal(t, entity.EmptyCell, state.NextPlayer)
		assert.Equal(t, 1, state.Score.Of(entity.PlayerX))
		assert.Equal(t, 0, state.Score.Of(entity.PlayerY))

		// When: someone keeps clicking after the win
		applied := controller.MakeTurn(ctx, 5)

		// Then: the click is ignored and no second report is sent
		assert.False(t, applied)
		assert.Equal(t, 5, controller.State().Step)
	})

	t.Run("Draw is reported as a status only", func(t *testing.T) {
		// Given: a reporter that must not be called
		controller := NewGameController(newTestLogger(), mockedUseCase.NewMockreporterDep(t))

		// When: the board fills without a line
		playMoves(t, ctx, controller, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// Then: there is no winner and no score change
		state := controller.State()
		assert.Equal(t, entity.StatusDraw, state.Status)
		assert.Equal(t, entity.NoWinner, state.Winner)
		assert.Equal(t, entity.Score{entity.PlayerX: 0, entity.PlayerY: 0}, state.Score)
	})
}

func TestGameController_JumpTo(t *testing.T) {
	ctx := context.Background()

	t.Run("Jump to start", func(t *testing.T) {
		// Given: a game with three moves
		controller := NewGameController(newTestLogger(), mockedUseCase.NewMockreporterDep(t))
		playMoves(t, ctx, controller, 0, 4, 8)

		// When: jumping to step 0
		require.True(t, controller.JumpTo(0))

		// Then: the board is empty and X is next
		state := controller.State()
		assert.Equal(t, entity.Snapshot{}, state.Board)
		assert.Equal(t, entity.PlayerX, state.NextPlayer)
		assert.Len(t, state.History, 1)
	})

	t.Run("Moves branch from the chosen step", func(t *testing.T) {
		// Given: a game with three moves
		controller := NewGameController(newTestLogger(), mockedUseCase.NewMockreporterDep(t))
		playMoves(t, ctx, controller, 0, 4, 8)

		// When: jumping to step 1 and playing a different move
		require.True(t, controller.JumpTo(1))
		playMoves(t, ctx, controller, 2)

		// Then: Y played cell 2 and the old future is gone
		state := controller.State()
		assert.Equal(t, 2, state.Step)
		assert.Equal(t, entity.PlayerY, state.Board[2])
		assert.Equal(t, entity.EmptyCell, state.Board[4])
		assert.Equal(t, entity.EmptyCell, state.Board[8])
	})

	t.Run("Invalid step is ignored", func(t *testing.T) {
		controller := NewGameController(newTestLogger(), mockedUseCase.NewMockreporterDep(t))
		playMoves(t, ctx, controller, 0)

		assert.False(t, controller.JumpTo(2))
		assert.False(t, controller.JumpTo(-1))
		assert.Equal(t, 1, controller.State().Step)
	})

	t.Run("Leaving a won position rolls the win back", func(t *testing.T) {
		// Given: Y has won
		reporter := mockedUseCase.NewMockreporterDep(t)
		reporter.EXPECT().
			ReportWinner(mock.Anything, entity.PlayerY).
			Return().
			Once()

		controller := NewGameController(newTestLogger(), reporter)
		playMoves(t, ctx, controller, 0, 2, 1, 4, 8, 6)
		require.Equal(t, 1, controller.State().Score.Of(entity.PlayerY))

		// When: jumping back before the winning move
		require.True(t, controller.JumpTo(3))

		// Then: the score is back to its value before the win and play resumes
		state := controller.State()
		assert.Equal(t, 0, state.Score.Of(entity.PlayerY))
		assert.Equal(t, entity.StatusOngoing, state.Status)
		assert.Equal(t, entity.PlayerY, state.NextPlayer)
	})

	t.Run("Jumping to the won step keeps the win", func(t *testing.T) {
		// Given: X has won in five moves
		reporter := mockedUseCase.NewMockreporterDep(t)
		reporter.EXPECT().
			ReportWinner(mock.Anything, entity.PlayerX).
			Return().
			Once()

		controller := NewGameController(newTestLogger(), reporter)
		playMoves(t, ctx, controller, 0, 3, 1, 4, 2)

		// When: jumping to the step that is already shown
		require.True(t, controller.JumpTo(5))

		// Then: nothing is rolled back
		state := controller.State()
		assert.Equal(t, 1, state.Score.Of(entity.PlayerX))
		assert.Equal(t, entity.StatusWon, state.Status)
	})

	t.Run("Rollback disabled", func(t *testing.T) {
		// Given: a controller that keeps wins on navigation
		reporter := mockedUseCase.NewMockreporterDep(t)
		reporter.EXPECT().
			ReportWinner(mock.Anything, entity.PlayerX).
			Return().
			Once()

		controller := NewGameController(newTestLogger(), reporter, WithScoreRollback(false))
		playMoves(t, ctx, controller, 0, 3, 1, 4, 2)

		// When: jumping back to the start
		require.True(t, controller.JumpTo(0))

		// Then: the win stays counted
		assert.Equal(t, 1, controller.State().Score.Of(entity.PlayerX))
	})
}

func TestGameController_Reset(t *testing.T) {
	ctx := context.Background()

	// Given: X has won once
	reporter := mockedUseCase.NewMockreporterDep(t)
	reporter.EXPECT().
		ReportWinner(mock.Anything, entity.PlayerX).
		Return().
		Twice()

	controller := NewGameController(newTestLogger(), reporter)
	playMoves(t, ctx, controller, 0, 3, 1, 4, 2)

	// When: the game is reset
	controller.Reset()

	// Then: the board is fresh but the session score is kept
	state := controller.State()
	assert.Equal(t, entity.Snapshot{}, state.Board)
	assert.Equal(t, entity.StatusOngoing, state.Status)
	assert.Equal(t, entity.PlayerX, state.NextPlayer)
	assert.Equal(t, 1, state.Score.Of(entity.PlayerX))

	// When: X wins again
	playMoves(t, ctx, controller, 0, 3, 1, 4, 2)

	// Then: the score accumulates and a second report is sent
	assert.Equal(t, 2, controller.State().Score.Of(entity.PlayerX))
}
