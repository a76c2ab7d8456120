package t2048

// Rand is the random source used for tile spawns.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// DefaultFourProbability is the chance that a spawned tile is a 4.
const DefaultFourProbability = 0.5

// Placement describes a spawned tile.
type Placement struct {
	Row, Col int
	Value    int
}

// SpawnTile places a 2 or a 4 in a uniformly chosen empty cell.
// fourProb is the probability of a 4. On a full grid the grid is returned
// unchanged and ok is false.
func SpawnTile(g Grid, rng Rand, fourProb float64) (out Grid, p Placement, ok bool) {
	empty := EmptyCells(g)
	if len(empty) == 0 {
		return g, Placement{}, false
	}

	cell := empty[rng.Intn(len(empty))]

	value := 2
	if rng.Float64() < fourProb {
		value = 4
	}

	g[cell.Row][cell.Col] = value
	return g, Placement{Row: cell.Row, Col: cell.Col, Value: value}, true
}
