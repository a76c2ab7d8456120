package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// SlotStore persists sessions on quit.
type SlotStore interface {
	SaveSlot(name string, snap t2048.Snapshot) error
	DeleteSlot(name string) error
}

// Options configures the presentation of a game.
type Options struct {
	Theme          t2048.Theme
	SwipeThreshold int    // Minimum drag length in cells
	Slot           string // Save slot written on quit; empty disables saving
	ScreenshotDir  string // Defaults to ~/.t2048/screenshots
}

// dragOrigin is where a left-button press started.
type dragOrigin struct {
	x, y int
}

// Model is the Bubble Tea model for a 2048 session.
type Model struct {
	game      *t2048.Game
	store     SlotStore
	logger    *log.Logger
	config    core.RuntimeConfig
	opts      Options
	keyMapper *KeyMapper

	drag     *dragOrigin
	banner   bool   // Game-over banner visible
	status   string // Last status message
	quitting bool
}

// NewModel creates a model around an existing game. store and logger may
// be nil.
func NewModel(game *t2048.Game, store SlotStore, logger *log.Logger, cfg core.RuntimeConfig, opts Options) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Theme == "" {
		opts.Theme = t2048.ThemeEmoji
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = filepath.Join(os.Getenv("HOME"), ".t2048", "screenshots")
	}

	return Model{
		game:      game,
		store:     store,
		logger:    logger,
		config:    cfg,
		opts:      opts,
		keyMapper: NewKeyMapper(),
	}
}

// Init implements tea.Model. The game is dealt before the program starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.autosave()
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action.IsMove():
		m.move(DirectionFor(action))
	case action == core.ActionRestart:
		m.restart()
	case action == core.ActionScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

// handleMouse turns a left-button drag into a move.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.drag = &dragOrigin{x: msg.X, y: msg.Y}
		}

	case tea.MouseActionRelease:
		if m.drag == nil {
			return m, nil
		}
		// Terminal cells are about twice as tall as they are wide.
		dx := msg.X - m.drag.x
		dy := (msg.Y - m.drag.y) * 2
		m.drag = nil

		if max(core.Abs(dx), core.Abs(dy)) < m.opts.SwipeThreshold {
			return m, nil
		}
		m.move(t2048.DirectionFromDelta(float64(dx), float64(dy)))
	}

	return m, nil
}

// move runs one turn and records its outcome.
func (m *Model) move(dir t2048.Direction) {
	res := m.game.Turn(dir)
	if !res.Accepted {
		return
	}

	m.status = ""
	m.logger.Debug("turn",
		"dir", dir,
		"changed", res.Changed,
		"gained", res.Gained,
		"score", m.game.Score(),
	)

	if res.GameOver {
		m.banner = true
		m.logger.Info("game over",
			"session", m.game.ID(),
			"score", m.game.Score(),
			"max_tile", t2048.MaxTile(m.game.Grid()),
			"moves", m.game.Moves(),
		)
	}
}

// restart deals a fresh board.
func (m *Model) restart() {
	m.game.Reset()
	m.banner = false
	m.status = "New game"
	m.logger.Info("restart", "session", m.game.ID())
}

// autosave writes the session to the configured slot. A finished game
// clears the slot instead so it is not offered for resuming.
func (m *Model) autosave() {
	if m.store == nil || m.opts.Slot == "" {
		return
	}

	if m.game.Over() {
		err := m.store.DeleteSlot(m.opts.Slot)
		if err != nil && !errors.Is(err, storage.ErrSlotNotFound) {
			m.logger.Warn("clear slot failed", "slot", m.opts.Slot, "error", err)
		}
		return
	}

	if err := m.store.SaveSlot(m.opts.Slot, m.game.Snapshot()); err != nil {
		m.logger.Warn("autosave failed", "slot", m.opts.Slot, "error", err)
		return
	}
	m.logger.Info("saved", "slot", m.opts.Slot, "score", m.game.Score())
}

// saveScreenshot writes the board as text.
func (m *Model) saveScreenshot() {
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.opts.ScreenshotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("2048_%s.txt", timestamp))

	content := fmt.Sprintf("Score: %d  Moves: %d\n%s", m.game.Score(), m.game.Moves(),
		t2048.FormatGrid(m.game.Grid(), m.opts.Theme))
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		m.status = "Screenshot failed"
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.status = "Screenshot saved to " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("2048"))
	b.WriteString("\n")
	b.WriteString(hudStyle.Render(fmt.Sprintf("Score: %d   Moves: %d   Best tile: %d",
		snap.Score, snap.Moves, snap.MaxTile)))
	b.WriteString("\n\n")
	b.WriteString(renderBoard(snap.Grid, m.opts.Theme))
	b.WriteString("\n")

	if m.banner {
		b.WriteString("\n")
		b.WriteString(bannerStyle.Render("Game Over! No more moves available.\nPress R to play again."))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("arrows/wasd/hjkl or drag: move  r: restart  ctrl+s: screenshot  q: quit"))

	return placeCenter(b.String(), m.config.ScreenW)
}

// Game returns the session driven by the model.
func (m Model) Game() *t2048.Game {
	return m.game
}

// BannerVisible reports whether the game-over banner is shown.
func (m Model) BannerVisible() bool {
	return m.banner
}

// Status returns the last status message.
func (m Model) Status() string {
	return m.status
}

// Run starts the Bubble Tea program with the given game.
func Run(game *t2048.Game, store SlotStore, logger *log.Logger, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, logger, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag to move
	)

	_, err := p.Run()
	return err
}
