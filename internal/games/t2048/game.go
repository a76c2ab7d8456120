package t2048

import (
	"github.com/google/uuid"
)

// Options controls spawn behaviour of a game.
type Options struct {
	InitialTiles    int     // Tiles spawned by Reset
	FourProbability float64 // Probability that a spawned tile is a 4
	SpawnOnNoop     bool    // Spawn even when a move changes nothing
}

// DefaultOptions returns the default rules. Two starting tiles, even odds
// of 2 or 4, and a spawn after every accepted move.
func DefaultOptions() Options {
	return Options{
		InitialTiles:    2,
		FourProbability: DefaultFourProbability,
		SpawnOnNoop:     true,
	}
}

// Game is a single game session. It owns one grid and one score and is
// not safe for concurrent use.
type Game struct {
	id   string
	rng  Rand
	opts Options

	grid  Grid
	score int
	moves int

	over     bool
	notified bool // game-over already reported for this session
}

// TurnResult describes what a single Turn did.
type TurnResult struct {
	Accepted bool      // Direction was valid
	Changed  bool      // Slide or merge moved at least one tile
	Gained   int       // Score added by merges
	Spawned  bool      // A tile was spawned
	Spawn    Placement // The spawned tile, if any
	Terminal bool      // Board is terminal after the turn
	GameOver bool      // Board became terminal on this turn (one-shot)
}

// New creates a game and deals the starting tiles.
func New(rng Rand, opts Options) *Game {
	g := &Game{rng: rng, opts: opts}
	g.Reset()
	return g
}

// Restore recreates a game from saved state. A restored terminal board does
// not report GameOver again.
func Restore(id string, grid Grid, score, moves int, rng Rand, opts Options) *Game {
	if id == "" {
		id = uuid.NewString()
	}
	over := IsTerminal(grid)
	return &Game{
		id:       id,
		rng:      rng,
		opts:     opts,
		grid:     grid,
		score:    score,
		moves:    moves,
		over:     over,
		notified: over,
	}
}

// Reset starts a new game: empty board, starting spawns, zero score.
// Used both at first load and on restart.
func (g *Game) Reset() {
	g.id = uuid.NewString()
	g.grid = Grid{}
	g.score = 0
	g.moves = 0
	g.over = false
	g.notified = false

	for range g.opts.InitialTiles {
		g.grid, _, _ = SpawnTile(g.grid, g.rng, g.opts.FourProbability)
	}
}

// Turn applies one direction input. An invalid direction is ignored: the
// board and score are untouched and nothing spawns.
//
// A valid direction always spawns a tile afterwards, even when the move
// changed nothing, unless SpawnOnNoop is disabled.
func (g *Game) Turn(dir Direction) TurnResult {
	next, gained, ok := ApplyDirection(g.grid, dir)
	if !ok {
		return TurnResult{}
	}

	res := TurnResult{
		Accepted: true,
		Changed:  next != g.grid,
		Gained:   gained,
	}

	if res.Changed || g.opts.SpawnOnNoop {
		next, res.Spawn, res.Spawned = SpawnTile(next, g.rng, g.opts.FourProbability)
	}

	g.grid = next
	g.score += gained
	g.moves++

	g.over = IsTerminal(g.grid)
	res.Terminal = g.over
	if g.over && !g.notified {
		res.GameOver = true
		g.notified = true
	}

	return res
}

// ID returns the session identifier. It changes on every Reset.
func (g *Game) ID() string {
	return g.id
}

// Grid returns a copy of the board.
func (g *Game) Grid() Grid {
	return g.grid
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Moves returns the number of accepted direction inputs.
func (g *Game) Moves() int {
	return g.moves
}

// Over reports whether the board is terminal.
func (g *Game) Over() bool {
	return g.over
}

// Options returns the rules this game was created with.
func (g *Game) Options() Options {
	return g.opts
}
