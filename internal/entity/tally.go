package entity

// Tally is the process-wide number of wins per player kept by the counter service.
type Tally struct {
	X int `json:"X"`
	Y int `json:"Y"`
}

// Add returns a copy of the tally with delta wins added for player.
func (that Tally) Add(player Mark, delta int) Tally {
	switch player {
	case PlayerX:
		that.X += delta
	case PlayerY:
		that.Y += delta
	}

	return that
}

func (that Tally) Of(player Mark) int {
	switch player {
	case PlayerX:
		return that.X
	case PlayerY:
		return that.Y
	default:
		return 0
	}
}
