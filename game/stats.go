package game

import "github.com/kamstrup/intmap"

// Stats accumulates counters across games. It survives Reset.
type Stats struct {
	Games     int
	BestScore int
	Pieces    int
	Lines     int

	spawns *intmap.Map[Kind, int]
	clears *intmap.Map[int, int]
}

func newStats() *Stats {
	return &Stats{
		spawns: intmap.New[Kind, int](KindCount),
		clears: intmap.New[int, int](4),
	}
}

// Spawns returns how many pieces of kind k have been spawned.
func (st *Stats) Spawns(k Kind) int {
	n, _ := st.spawns.Get(k)
	return n
}

// Clears returns how many line-clear passes removed exactly lines rows.
func (st *Stats) Clears(lines int) int {
	n, _ := st.clears.Get(lines)
	return n
}

// ClearPasses returns the number of passes that cleared at least one row.
func (st *Stats) ClearPasses() int {
	total := 0
	for lines := 1; lines <= 4; lines++ {
		total += st.Clears(lines)
	}
	return total
}

func (st *Stats) recordSpawn(k Kind) {
	n, _ := st.spawns.Get(k)
	st.spawns.Put(k, n+1)
	st.Pieces++
}

func (st *Stats) recordClear(lines int) {
	if lines <= 0 {
		return
	}
	n, _ := st.clears.Get(lines)
	st.clears.Put(lines, n+1)
	st.Lines += lines
}

func (st *Stats) recordScore(score int) {
	if score > st.BestScore {
		st.BestScore = score
	}
}

func (st *Stats) recordGameOver(score int) {
	st.Games++
	st.recordScore(score)
}
