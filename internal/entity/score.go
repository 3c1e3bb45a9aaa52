package entity

import "maps"

// Score maps a player to the number of games they won in the current session.
// Values are never edited in place: Adjust returns a new table.
type Score map[Mark]int

func NewScore(players []Mark, startingScore int) Score {
	score := make(Score, len(players))
	for _, player := range players {
		score[player] = startingScore
	}

	return score
}

// Adjust returns a copy of the table with delta added to the player's score.
// There is no bounds check; callers only decrement a previously counted win.
func (that Score) Adjust(player Mark, delta int) Score {
	next := maps.Clone(that)
	if next == nil {
		next = make(Score, 1)
	}

	next[player] += delta

	return next
}

func (that Score) Of(player Mark) int {
	return that[player]
}
