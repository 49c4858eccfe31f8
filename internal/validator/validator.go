package validator

import (
	"context"

	"github.com/Nasso-Kareh/Sudoku-App/internal/domain"
)

// ConflictValidator reports every cell involved in a duplicate within
// its row, column or box. Both members of each colliding pair are
// flagged, and a cell flagged by several rules appears once.
type ConflictValidator struct{}

func New() *ConflictValidator { return &ConflictValidator{} }

// Validate never mutates g and places no ordering guarantee on the
// returned conflicts.
func (v *ConflictValidator) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	marked := make(map[domain.CellCoord]struct{}, 8)

	// rows: first pass collects values seen at least twice, second pass
	// flags every holder of such a value
	for r := 0; r < 9; r++ {
		seen, twice := 0, 0
		for c := 0; c < 9; c++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if seen&bit != 0 {
				twice |= bit
			}
			seen |= bit
		}
		for c := 0; c < 9; c++ {
			if val := g[r][c]; val != 0 && twice&(1<<val) != 0 {
				marked[domain.CellCoord{Row: r, Col: c}] = struct{}{}
			}
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		seen, twice := 0, 0
		for r := 0; r < 9; r++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if seen&bit != 0 {
				twice |= bit
			}
			seen |= bit
		}
		for r := 0; r < 9; r++ {
			if val := g[r][c]; val != 0 && twice&(1<<val) != 0 {
				marked[domain.CellCoord{Row: r, Col: c}] = struct{}{}
			}
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			seen, twice := 0, 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					val := g[br*3+dr][bc*3+dc]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if seen&bit != 0 {
						twice |= bit
					}
					seen |= bit
				}
			}
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r, c := br*3+dr, bc*3+dc
					if val := g[r][c]; val != 0 && twice&(1<<val) != 0 {
						marked[domain.CellCoord{Row: r, Col: c}] = struct{}{}
					}
				}
			}
		}
	}

	conf := make([]domain.CellCoord, 0, len(marked))
	for cc := range marked {
		conf = append(conf, cc)
	}
	return len(conf) == 0, conf, nil
}
