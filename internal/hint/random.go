package hint

import (
	"context"
	"math/rand"
	"sync"

	"github.com/Nasso-Kareh/Sudoku-App/internal/domain"
	"github.com/Nasso-Kareh/Sudoku-App/internal/ports"
)

// SolveHinter reveals one empty cell's digit by solving a clone of the
// grid and reading the chosen cell from the solution.
type SolveHinter struct {
	Solver ports.Solver

	mu  sync.Mutex // *rand.Rand is not goroutine-safe
	rng *rand.Rand
}

// NewSolveHinter wires a hinter around the given solver. A nil rng
// falls back to a fixed-seed source so library callers stay
// deterministic; services inject their own.
func NewSolveHinter(s ports.Solver, rng *rand.Rand) *SolveHinter {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &SolveHinter{Solver: s, rng: rng}
}

// Hint picks a uniformly random empty cell, solves a clone of g, and
// returns that cell's solved digit. It reports no hint when the grid is
// already full or has no completion; g is never modified either way.
// A canceled context surfaces as an error, not as a no-hint result.
func (h *SolveHinter) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	empties := make([]domain.CellCoord, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				empties = append(empties, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	if len(empties) == 0 {
		return domain.Hint{}, false, nil
	}

	h.mu.Lock()
	pick := empties[h.rng.Intn(len(empties))]
	h.mu.Unlock()

	solved, _, err := h.Solver.Solve(ctx, g)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Hint{}, false, ctxErr
		}
		// unsolvable from the given state: no hint, not an error
		return domain.Hint{}, false, nil
	}
	return domain.Hint{Row: pick.Row, Col: pick.Col, Value: solved[pick.Row][pick.Col]}, true, nil
}
