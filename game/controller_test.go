package game_test

import (
	"testing"

	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveLeftAtWallIsRejected(t *testing.T) {
	s := game.New(script(0))
	// T Up fills local column 0, so x=0 is flush with the wall.
	require.True(t, s.Place(game.Piece{Kind: game.T, Orientation: game.Up, X: 0, Y: 5}))

	assert.False(t, s.MoveLeft())
	p, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, 0, p.X)
	assert.Equal(t, 5, p.Y)
}

func TestMoveRightAtWallIsRejected(t *testing.T) {
	s := game.New(script(0))
	require.True(t, s.Place(game.Piece{Kind: game.T, Orientation: game.Up, X: game.Cols - 3, Y: 5}))

	assert.False(t, s.MoveRight())
	p, _ := s.Active()
	assert.Equal(t, game.Cols-3, p.X)
}

func TestMovesCommitWhenTheyFit(t *testing.T) {
	s := game.New(script(0))
	require.True(t, s.SpawnKind(game.T, game.Up))

	assert.True(t, s.MoveLeft())
	assert.True(t, s.MoveRight())
	assert.True(t, s.MoveRight())
	assert.True(t, s.SoftDrop())
	assert.True(t, s.Rotate())

	p, _ := s.Active()
	assert.Equal(t, game.Piece{Kind: game.T, Orientation: game.Right, X: game.SpawnX + 1, Y: 1}, p)
}

func TestMoveBlockedByLockedCell(t *testing.T) {
	var f game.Field
	f.Set(2, 1, game.CellOf(game.Z))
	s := game.NewWithField(script(0), f)
	// T Up covers (x, y+1) with its lower left cell.
	require.True(t, s.Place(game.Piece{Kind: game.T, Orientation: game.Up, X: 3, Y: 0}))

	assert.False(t, s.MoveLeft())
	p, _ := s.Active()
	assert.Equal(t, 3, p.X)
}

func TestRotateWithoutRoomIsRejected(t *testing.T) {
	s := game.New(script(0))
	// Against the right wall the horizontal bar would stick out.
	require.True(t, s.Place(game.Piece{Kind: game.Bar, Orientation: game.Up, X: game.Cols - 3, Y: 4}))

	assert.False(t, s.Rotate())
	p, _ := s.Active()
	assert.Equal(t, game.Up, p.Orientation)
}

func TestHardDropLandsOnFloor(t *testing.T) {
	s := game.New(script(0))
	require.True(t, s.SpawnKind(game.Bar, game.Up))

	rows := s.HardDrop()
	p, ok := s.Active()
	require.True(t, ok, "hard drop does not lock by itself")
	assert.Equal(t, game.Rows-4, rows)
	assert.Equal(t, game.Rows-4, p.Y)
	assert.False(t, s.SoftDrop())
	assert.Equal(t, 0, s.HardDrop())
}

func TestHardDropLandsOnStack(t *testing.T) {
	var f game.Field
	fullRow(&f, game.Rows-1, 0)
	s := game.NewWithField(script(0), f)
	require.True(t, s.SpawnKind(game.Box, game.Up))

	s.HardDrop()
	p, _ := s.Active()
	// Box cells sit on rows y and y+1; the stack starts at the last row.
	assert.Equal(t, game.Rows-3, p.Y)
}

func TestControlsIgnoredWithoutActivePiece(t *testing.T) {
	s := game.New(script(0))
	assert.False(t, s.MoveLeft())
	assert.False(t, s.MoveRight())
	assert.False(t, s.SoftDrop())
	assert.False(t, s.Rotate())
	assert.Equal(t, 0, s.HardDrop())
	assert.False(t, s.Lock())
}
