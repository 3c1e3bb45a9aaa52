package entity

import "encoding/json"

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

// Mark is the content of a single cell, and doubles as a player identifier.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerY Mark = "Y"

	EmptyCell Mark = ""
	NoWinner  Mark = EmptyCell
)

const BoardSize = 9

// Players lists the known player identifiers in display order.
var Players = []Mark{PlayerX, PlayerY}

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// ParseMark returns the player for a wire identifier. Only "X" and "Y" are players.
func ParseMark(s string) (Mark, bool) {
	switch Mark(s) {
	case PlayerX, PlayerY:
		return Mark(s), true
	default:
		return EmptyCell, false
	}
}

// MarshalJSON renders an empty cell (and the absence of a winner) as null.
func (that Mark) MarshalJSON() ([]byte, error) {
	if that == EmptyCell {
		return []byte("null"), nil
	}

	return json.Marshal(string(that))
}

func (that *Mark) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == nil {
		*that = EmptyCell
		return nil
	}

	*that = Mark(*s)

	return nil
}

// Snapshot is the grid at one point of the game. Index i maps to row i/3, column i%3.
// It is an array, so every assignment copies it.
type Snapshot [BoardSize]Mark

// IsFull reports whether no empty cell is left.
func (that Snapshot) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// History is the ordered list of snapshots; History[0] is the empty board.
type History []Snapshot

// Current returns the latest snapshot.
func (that History) Current() Snapshot {
	if len(that) == 0 {
		return Snapshot{}
	}

	return that[len(that)-1]
}

// Step is the index of the latest snapshot, which equals the number of moves made.
func (that History) Step() int {
	return len(that) - 1
}

// NextPlayer derives whose turn it is from the number of moves made so far.
func (that History) NextPlayer() Mark {
	if that.Step()%2 == 0 {
		return PlayerX
	}

	return PlayerY
}

// GameState is the read-only view of a session handed to transports.
type GameState struct {
	Board      Snapshot   `json:"board"`
	Step       int        `json:"step"`
	History    []Snapshot `json:"history"`
	NextPlayer Mark       `json:"next_player"`
	Winner     Mark       `json:"winner"`
	Status     string     `json:"status"`
	Score      Score      `json:"score"`
}

func (that *GameState) IsWon() bool {
	return that.Status == StatusWon
}
