package game_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
)

// rendered returns the 4x4 occupancy of k in orientation o as a pattern string.
func rendered(k game.Kind, o game.Orientation) string {
	out := make([]byte, 16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			out[y*4+x] = '.'
			if game.Occupied(k, x, y, o) {
				out[y*4+x] = 'X'
			}
		}
	}
	return string(out)
}

// quarterTurn applies the orientation 1 mapping to an arbitrary pattern.
func quarterTurn(pattern string) string {
	out := make([]byte, 16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			out[y*4+x] = pattern[game.CellIndex(x, y, game.Right)]
		}
	}
	return string(out)
}

func TestCellIndexIsPermutation(t *testing.T) {
	for o := game.Up; o <= game.Left; o++ {
		t.Run(o.String(), func(t *testing.T) {
			seen := map[int]bool{}
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					idx := game.CellIndex(x, y, o)
					assert.GreaterOrEqual(t, idx, 0)
					assert.Less(t, idx, 16)
					seen[idx] = true
				}
			}
			assert.Len(t, seen, 16)
		})
	}
}

func TestCellIndexFormulas(t *testing.T) {
	tests := []struct {
		x, y int
		o    game.Orientation
		want int
	}{
		{0, 0, game.Up, 0},
		{3, 2, game.Up, 11},
		{0, 0, game.Right, 12},
		{1, 2, game.Right, 10},
		{0, 0, game.Down, 15},
		{2, 1, game.Down, 9},
		{0, 0, game.Left, 3},
		{2, 3, game.Left, 8},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d,%d/%s", tt.x, tt.y, tt.o), func(t *testing.T) {
			assert.Equal(t, tt.want, game.CellIndex(tt.x, tt.y, tt.o))
		})
	}
}

func TestOrientationIsModuloFour(t *testing.T) {
	for o := game.Orientation(-8); o < 12; o++ {
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				assert.Equal(t, game.CellIndex(x, y, o.Normalize()), game.CellIndex(x, y, o))
				assert.Equal(t, game.CellIndex(x, y, o), game.CellIndex(x, y, o+4))
			}
		}
	}

	assert.Equal(t, game.Up, game.Left.Next())
	assert.Equal(t, game.Right, game.Orientation(4).Next())
	assert.Equal(t, game.Left, game.Orientation(-1).Normalize())
}

func TestFourQuarterTurnsRestorePattern(t *testing.T) {
	for _, k := range game.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			base := k.Pattern()
			p := base
			for o := game.Up; o <= game.Left; o++ {
				assert.Equal(t, rendered(k, o), p, "orientation %s", o)
				p = quarterTurn(p)
			}
			assert.Equal(t, base, p)

			o := game.Up
			for i := 0; i < 4; i++ {
				o = o.Next()
			}
			assert.Equal(t, base, rendered(k, o))
		})
	}
}

func TestEveryOrientationHasFourCells(t *testing.T) {
	for _, k := range game.Kinds() {
		for o := game.Up; o <= game.Left; o++ {
			assert.Len(t, game.Cells(k, o), 4, "%s/%s", k, o)
		}
	}
}
