package generator

import "github.com/Nasso-Kareh/Sudoku-App/internal/ports"

// CarvingGenerator builds puzzles by clearing cells from a full
// solution produced by the wired Solver.
type CarvingGenerator struct {
	Solver ports.Solver
}

// NewCarvingGenerator wires a generator around the given solver.
func NewCarvingGenerator(s ports.Solver) *CarvingGenerator {
	return &CarvingGenerator{Solver: s}
}
