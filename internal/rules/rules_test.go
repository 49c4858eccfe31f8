package rules

import (
	"testing"

	"github.com/Nasso-Kareh/Sudoku-App/internal/domain"
)

func TestAllowed(t *testing.T) {
	var g domain.Grid
	g[0][0] = 5
	g[4][4] = 7

	cases := []struct {
		name    string
		r, c    int
		v       uint8
		allowed bool
	}{
		{"free cell empty grid", 8, 8, 1, true},
		{"row duplicate", 0, 8, 5, false},
		{"col duplicate", 8, 0, 5, false},
		{"box duplicate", 1, 1, 5, false},
		{"same digit far away", 8, 8, 5, true},
		{"center box duplicate", 3, 5, 7, false},
		{"other digit near peer", 0, 1, 6, true},
	}
	for _, tc := range cases {
		if got := Allowed(&g, tc.r, tc.c, tc.v); got != tc.allowed {
			t.Errorf("%s: Allowed(%d,%d,%d) = %v, want %v", tc.name, tc.r, tc.c, tc.v, got, tc.allowed)
		}
	}
}
