package game_test

import (
	"strings"
	"testing"

	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws, wrapping around when exhausted.
type scriptedSource struct {
	draws []int
	next  int
}

func script(draws ...int) *scriptedSource {
	return &scriptedSource{draws: draws}
}

func (s *scriptedSource) IntN(n int) int {
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v % n
}

var kindLetters = map[rune]game.Kind{
	'I': game.Bar,
	'O': game.Box,
	'T': game.T,
	'L': game.L,
	'J': game.J,
	'Z': game.Z,
	'S': game.S,
}

// parseField reads a field drawn with one line per row. Rows are aligned to
// the bottom of the field; missing rows above are empty.
func parseField(t testing.TB, text string) game.Field {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.LessOrEqual(t, len(lines), game.Rows, "too many rows")

	var f game.Field
	top := game.Rows - len(lines)
	for i, line := range lines {
		line = strings.TrimSpace(line)
		require.Len(t, line, game.Cols, "row %d", i)
		for x, r := range line {
			if r == '.' {
				continue
			}
			k, ok := kindLetters[r]
			require.True(t, ok, "unknown cell %q", r)
			f.Set(x, top+i, game.CellOf(k))
		}
	}
	return f
}

func fullRow(f *game.Field, y int, except ...int) {
	skip := map[int]bool{}
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < game.Cols; x++ {
		if !skip[x] {
			f.Set(x, y, game.CellOf(game.Box))
		}
	}
}

// tickUntilLocked advances gravity until the active piece is gone.
func tickUntilLocked(t testing.TB, s *game.State) {
	t.Helper()
	for i := 0; i < game.DropFrames*(game.Rows+2); i++ {
		if _, ok := s.Active(); !ok {
			return
		}
		s.Tick()
	}
	t.Fatal("piece never locked")
}
