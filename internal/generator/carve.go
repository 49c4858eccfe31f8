package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/Nasso-Kareh/Sudoku-App/internal/domain"
	"github.com/Nasso-Kareh/Sudoku-App/internal/ports"
)

// Generate produces a puzzle with exactly diff.Clues() filled cells.
// The full board comes from solving an empty grid (ascending digit
// order makes that board deterministic); only the removal order depends
// on seed, so the same seed yields the same puzzle. The carved puzzle
// is not checked for solution uniqueness.
func (g *CarvingGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	// 1) full solution from an empty grid
	var empty domain.Grid
	full, st, err := g.Solver.Solve(ctx, &empty)
	if err != nil {
		return nil, ports.Stats{Nodes: st.Nodes, Duration: time.Since(start)}, err
	}

	// 2) carve a copy: clear exactly 81-clues cells, uniformly chosen
	puz := *full
	positions := make([]int, 81)
	for i := 0; i < 81; i++ {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })
	for _, pos := range positions[:81-diff.Clues()] {
		puz[pos/9][pos%9] = 0
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Grid:       puz,
	}
	return p, ports.Stats{Nodes: st.Nodes, Duration: time.Since(start)}, nil
}
