package solver

import (
	"context"
	"errors"
	"time"

	"github.com/Nasso-Kareh/Sudoku-App/internal/domain"
	"github.com/Nasso-Kareh/Sudoku-App/internal/ports"
	"github.com/Nasso-Kareh/Sudoku-App/internal/rules"
)

// Solve returns a completed copy of g; the input grid is never touched.
// Callers that want the mutate-in-place contract use SolveInPlace.
func (s *BacktrackingSolver) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	out := *g
	st, err := s.SolveInPlace(ctx, &out)
	if err != nil {
		return nil, st, err
	}
	return &out, st, nil
}

// SolveInPlace fills every empty cell of g via depth-first search:
// first empty cell in row-major order, digits tried ascending, failed
// branches undone before the next digit. Filled cells are fixed givens
// and never overwritten. On failure (no completion, or canceled
// context) all speculative assignments have been undone and g holds its
// original content. Input is assumed well-shaped and conflict-free.
func (s *BacktrackingSolver) SolveInPlace(ctx context.Context, g *domain.Grid) (ports.Stats, error) {
	start := time.Now()
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(g)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if rules.Allowed(g, r, c, v) {
				g[r][c] = v
				if dfs() {
					return true
				}
				g[r][c] = 0
			}
		}
		return false
	}
	if !dfs() {
		return ports.Stats{Nodes: nodes, Duration: time.Since(start)}, errors.New("unsolvable or canceled")
	}
	return ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
