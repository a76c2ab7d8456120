package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// firstCellRand always picks the first empty cell and spawns a 2.
type firstCellRand struct{}

func (firstCellRand) Intn(int) int     { return 0 }
func (firstCellRand) Float64() float64 { return 0.9 }

type fakeStore struct {
	saved   map[string]t2048.Snapshot
	deleted []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: make(map[string]t2048.Snapshot)}
}

func (s *fakeStore) SaveSlot(name string, snap t2048.Snapshot) error {
	s.saved[name] = snap
	return nil
}

func (s *fakeStore) DeleteSlot(name string) error {
	if _, ok := s.saved[name]; !ok {
		return storage.ErrSlotNotFound
	}
	delete(s.saved, name)
	s.deleted = append(s.deleted, name)
	return nil
}

func newTestModel(t *testing.T, grid t2048.Grid, store SlotStore) Model {
	t.Helper()
	game := t2048.Restore("test-session", grid, 0, 0, firstCellRand{}, t2048.DefaultOptions())
	return NewModel(game, store, nil, core.DefaultConfig(), Options{
		Theme:          t2048.ThemeNumbers,
		SwipeThreshold: 2,
		Slot:           "autosave",
		ScreenshotDir:  t.TempDir(),
	})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return model
}

// almostOver becomes terminal after a left move spawns a 2 at (3,3).
var almostOver = t2048.Grid{
	{2, 4, 8, 16},
	{4, 8, 16, 32},
	{2, 4, 8, 16},
	{0, 32, 64, 128},
}

func TestModelKeyMove(t *testing.T) {
	m := newTestModel(t, t2048.Grid{{0, 2, 2, 0}}, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	g := m.Game()
	if got := g.Grid()[0]; got != [4]int{4, 2, 0, 0} {
		t.Errorf("row 0 = %v, want [4 2 0 0]", got)
	}
	if g.Score() != 4 {
		t.Errorf("score = %d, want 4", g.Score())
	}
	if g.Moves() != 1 {
		t.Errorf("moves = %d, want 1", g.Moves())
	}
}

func TestModelUnboundKeyIgnored(t *testing.T) {
	m := newTestModel(t, t2048.Grid{{2}}, nil)

	m = update(t, m, runeKey("z"))

	if m.Game().Moves() != 0 {
		t.Errorf("unbound key should not take a turn")
	}
	if m.Game().Grid() != (t2048.Grid{{2}}) {
		t.Errorf("grid changed: %v", m.Game().Grid())
	}
}

func TestModelGameOverBanner(t *testing.T) {
	m := newTestModel(t, almostOver, nil)

	if m.BannerVisible() {
		t.Fatal("banner should start hidden")
	}

	m = update(t, m, runeKey("a"))
	if !m.Game().Over() {
		t.Fatalf("expected terminal board, got %v", m.Game().Grid())
	}
	if !m.BannerVisible() {
		t.Error("banner should be shown when the game ends")
	}
	if !strings.Contains(m.View(), "Game Over!") {
		t.Error("View() should include the game-over banner")
	}

	// Input is not blocked after game over
	m = update(t, m, runeKey("d"))
	if m.Game().Moves() != 2 {
		t.Errorf("moves = %d, want 2", m.Game().Moves())
	}

	m = update(t, m, runeKey("r"))
	if m.BannerVisible() {
		t.Error("restart should hide the banner")
	}
	if m.Game().Over() || m.Game().Score() != 0 || m.Game().Moves() != 0 {
		t.Errorf("restart did not reset the game: over=%v score=%d moves=%d",
			m.Game().Over(), m.Game().Score(), m.Game().Moves())
	}
	if n := len(t2048.EmptyCells(m.Game().Grid())); n != 14 {
		t.Errorf("restart should deal two tiles, %d empty cells", n)
	}
}

func TestModelMouseDrag(t *testing.T) {
	tests := []struct {
		name       string
		fromX      int
		fromY      int
		toX        int
		toY        int
		wantMoves  int
		wantCorner [2]int // Cell that must hold the original tile
	}{
		{"drag right", 10, 10, 20, 11, 1, [2]int{0, 3}},
		{"drag down", 10, 10, 11, 14, 1, [2]int{3, 0}},
		{"too short", 10, 10, 11, 10, 0, [2]int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, t2048.Grid{{8}}, nil)

			m = update(t, m, tea.MouseMsg{X: tt.fromX, Y: tt.fromY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			m = update(t, m, tea.MouseMsg{X: tt.toX, Y: tt.toY, Action: tea.MouseActionRelease})

			if m.Game().Moves() != tt.wantMoves {
				t.Errorf("moves = %d, want %d", m.Game().Moves(), tt.wantMoves)
			}
			if v := m.Game().Grid()[tt.wantCorner[0]][tt.wantCorner[1]]; v != 8 {
				t.Errorf("cell %v = %d, want 8", tt.wantCorner, v)
			}
		})
	}
}

func TestModelReleaseWithoutPress(t *testing.T) {
	m := newTestModel(t, t2048.Grid{{8}}, nil)

	m = update(t, m, tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionRelease})

	if m.Game().Moves() != 0 {
		t.Error("release without a press should be ignored")
	}
}

func TestModelQuitSaves(t *testing.T) {
	store := newFakeStore()
	m := newTestModel(t, t2048.Grid{{2, 2}}, store)
	m = update(t, m, runeKey("a"))

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quitting")
	}

	snap, ok := store.saved["autosave"]
	if !ok {
		t.Fatal("session was not saved on quit")
	}
	if snap.SessionID != "test-session" || snap.Score != 4 || snap.Moves != 1 {
		t.Errorf("saved snapshot = %+v", snap)
	}
}

func TestModelQuitClearsFinishedSlot(t *testing.T) {
	store := newFakeStore()
	store.saved["autosave"] = t2048.Snapshot{}
	m := newTestModel(t, almostOver, store)
	m = update(t, m, runeKey("a"))

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if _, ok := store.saved["autosave"]; ok {
		t.Error("finished game should clear the autosave slot")
	}
}

func TestModelQuitWithoutSlot(t *testing.T) {
	store := newFakeStore()
	m := newTestModel(t, t2048.Grid{{2}}, store)
	m.opts.Slot = ""

	update(t, m, runeKey("q"))

	if len(store.saved) != 0 {
		t.Error("nothing should be saved without a slot")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, t2048.Grid{{2048}}, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.opts.ScreenshotDir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 screenshot, got %d", len(entries))
	}
	data, err := os.ReadFile(m.opts.ScreenshotDir + "/" + entries[0].Name())
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "2048") || !strings.Contains(string(data), "Score: 0") {
		t.Errorf("screenshot content = %q", data)
	}
	if !strings.HasPrefix(m.Status(), "Screenshot saved") {
		t.Errorf("status = %q", m.Status())
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t, t2048.Grid{{2, 4}}, nil)

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.Game().Grid() != (t2048.Grid{{2, 4}}) {
		t.Error("resize should not reset the board")
	}
	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("config = %+v", m.config)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, t2048.Grid{{2, 0, 0, 1024}}, nil)

	view := m.View()
	for _, want := range []string{"2048", "Score: 0", "Best tile: 1024", "1024"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
