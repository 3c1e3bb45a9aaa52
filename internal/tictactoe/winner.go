package tictactoe

import "github.com/rocketscienceinc/tictactoe-session/internal/entity"

// DetectWinner returns the player owning a full row, column or diagonal, or
// entity.NoWinner. A full board without a line is also entity.NoWinner.
func DetectWinner(board entity.Snapshot) entity.Mark {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	return entity.NoWinner
}
