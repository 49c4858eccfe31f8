package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nasso-Kareh/Sudoku-App/internal/domain"
)

var solved = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestValidateCleanGrids(t *testing.T) {
	v := New()
	ctx := context.Background()

	var empty domain.Grid
	ok, conf, err := v.Validate(ctx, &empty)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)

	ok, conf, err = v.Validate(ctx, &solved)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}

func TestValidateFlagsBothRowDuplicates(t *testing.T) {
	// row 0 = [5,3,_,_,7,...] with a duplicate 5 put at (0,1)
	g := domain.Grid{
		{5, 5, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
	ok, conf, err := New().Validate(context.Background(), &g)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.ElementsMatch(t, []domain.CellCoord{
		{Row: 0, Col: 0},
		{Row: 0, Col: 1},
	}, conf, "both members of the pair must be flagged, nothing else")
}

func TestValidateFlagsBothBoxDuplicates(t *testing.T) {
	// two 5s in the top-left box, different row and column, nothing else
	var g domain.Grid
	g[0][0] = 5
	g[1][1] = 5
	ok, conf, err := New().Validate(context.Background(), &g)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.ElementsMatch(t, []domain.CellCoord{
		{Row: 0, Col: 0},
		{Row: 1, Col: 1},
	}, conf)
}

func TestValidateDeduplicatesMultiRuleConflicts(t *testing.T) {
	// (0,0) and (0,1) collide by row AND by box; each appears once
	var g domain.Grid
	g[0][0] = 5
	g[0][1] = 5
	_, conf, err := New().Validate(context.Background(), &g)
	require.NoError(t, err)
	assert.Len(t, conf, 2)
}

func TestValidateIdempotent(t *testing.T) {
	var g domain.Grid
	g[0][0] = 5
	g[8][0] = 5 // column conflict
	g[4][4] = 3
	v := New()
	ctx := context.Background()

	_, first, err := v.Validate(ctx, &g)
	require.NoError(t, err)
	_, second, err := v.Validate(ctx, &g)
	require.NoError(t, err)
	assert.ElementsMatch(t, first, second)
}

func TestValidateNeverMutates(t *testing.T) {
	g := solved
	g[3][3] = g[3][4] // force a conflict
	before := g
	_, _, err := New().Validate(context.Background(), &g)
	require.NoError(t, err)
	assert.Equal(t, before, g)
}
