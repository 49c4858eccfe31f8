// Package rules holds the row/column/box legality check shared by the
// solver, generator and hinter.
package rules

import "github.com/Nasso-Kareh/Sudoku-App/internal/domain"

// Allowed reports whether digit v may be placed at (r, c) without
// duplicating a value in the cell's row, column or 3x3 box. Only the
// 9 peers of each group are scanned. The target cell is assumed empty.
func Allowed(g *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
