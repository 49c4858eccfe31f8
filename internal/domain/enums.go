package domain

// Difficulty selects how many clues a generated puzzle retains.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Clues returns the number of filled cells (out of 81) a puzzle at this
// difficulty keeps: 36 easy, 27 medium, 18 hard.
func (d Difficulty) Clues() int {
	switch d {
	case Easy:
		return 36
	case Hard:
		return 18
	default:
		return 27
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}
