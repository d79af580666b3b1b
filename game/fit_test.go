package game_test

import (
	"testing"

	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
)

func TestFitsRejectsCellsOutsideField(t *testing.T) {
	var f game.Field

	for _, k := range game.Kinds() {
		for o := game.Up; o <= game.Left; o++ {
			cells := game.Cells(k, o)
			for x := -4; x <= game.Cols; x++ {
				for y := -4; y <= game.Rows; y++ {
					inside := true
					for _, c := range cells {
						if !game.InBounds(x+c.X, y+c.Y) {
							inside = false
							break
						}
					}
					assert.Equal(t, inside, game.Fits(k, o, x, y, &f), "%s/%s at (%d,%d)", k, o, x, y)
				}
			}
		}
	}
}

func TestFitsRejectsOverlap(t *testing.T) {
	var f game.Field
	p := game.Piece{Kind: game.T, Orientation: game.Up, X: 3, Y: 5}
	assert.True(t, p.Fits(&f))

	for _, c := range p.Cells() {
		blocked := f
		blocked.Set(c.X, c.Y, game.CellOf(game.Z))
		assert.False(t, p.Fits(&blocked), "locked cell at %v", c)
	}

	// A locked cell inside the box but outside the shape does not matter.
	f.Set(3, 5, game.CellOf(game.Z))
	assert.True(t, p.Fits(&f))
}

func TestFitsAllowsEmptyBoxRowsOutside(t *testing.T) {
	var f game.Field
	// Box occupies only the top two rows of its box; the rest may hang below.
	assert.True(t, game.Fits(game.Box, game.Up, 0, game.Rows-2, &f))
	assert.False(t, game.Fits(game.Box, game.Up, 0, game.Rows-1, &f))
	// Its left column is empty so the box may start at -1.
	assert.True(t, game.Fits(game.Box, game.Up, -1, 0, &f))
	assert.False(t, game.Fits(game.Box, game.Up, -2, 0, &f))
}
