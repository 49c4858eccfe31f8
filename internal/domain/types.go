package domain

// Grid is a 9x9 Sudoku board. 0 marks an empty cell, 1-9 a digit.
// Because Grid is an array type, plain assignment copies all 81 cells,
// so `clone := *g` is a deep clone.
type Grid [9][9]uint8

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint is one cell's digit taken from some completion of the grid it
// was computed against. Hints are returned, never stored.
type Hint struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Value uint8 `json:"value"`
}

// Puzzle is a generated Sudoku together with the inputs that produced it.
type Puzzle struct {
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Grid       Grid       `json:"board"`
}
