package tictactoe

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-session/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
)

// Reset returns a history holding only the empty board.
func Reset() entity.History {
	return entity.History{entity.Snapshot{}}
}

// ApplyMove returns a new history with the player's mark placed on cell.
// On any violation the given history is returned as is, together with the reason.
func ApplyMove(history entity.History, cell int, player entity.Mark) (entity.History, error) {
	if err := validateMove(history, cell, player); err != nil {
		return history, fmt.Errorf("invalid turn: %w", err)
	}

	next := history.Current()
	next[cell] = player

	// Clip forces append to allocate, so a history sharing its array with
	// a longer one (after Truncate) never overwrites the longer one.
	return append(slices.Clip(history), next), nil
}

// Truncate returns the prefix of history up to and including step.
func Truncate(history entity.History, step int) (entity.History, error) {
	if step < 0 || step >= len(history) {
		return history, fmt.Errorf("%w: step %d of %d", apperror.ErrInvalidStep, step, len(history))
	}

	return slices.Clip(history[:step+1]), nil
}

// validateMove - checks if the move is valid.
func validateMove(history entity.History, cell int, player entity.Mark) error {
	if _, ok := entity.ParseMark(string(player)); !ok {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, player)
	}

	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	current := history.Current()

	if DetectWinner(current) != entity.NoWinner {
		return apperror.ErrGameFinished
	}

	if current[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}
