package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is a read-only copy of a game for display and persistence.
type Snapshot struct {
	SessionID string
	Moves     int
	Score     int
	Grid      Grid
	MaxTile   int
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.over {
		state = StateGameOver
	}

	return Snapshot{
		SessionID: g.id,
		Moves:     g.moves,
		Score:     g.score,
		Grid:      g.grid,
		MaxTile:   MaxTile(g.grid),
		State:     state,
	}
}

// Cells returns the 16 cell values in row-major order.
func (s Snapshot) Cells() []int {
	cells := make([]int, 0, BoardSize*BoardSize)
	for y := range BoardSize {
		cells = append(cells, s.Grid[y][:]...)
	}
	return cells
}
