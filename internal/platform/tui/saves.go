package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const maxTableRows = 20

// SlotBrowser lists and removes save slots.
type SlotBrowser interface {
	ListSlots() ([]storage.Slot, error)
	DeleteSlot(name string) error
}

// SavesKeyMap defines the key bindings for the saves browser.
type SavesKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SavesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SavesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Delete},
		{k.Back, k.Quit},
	}
}

// DefaultSavesKeyMap returns default key bindings.
func DefaultSavesKeyMap() SavesKeyMap {
	return SavesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "resume"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SavesModel is the Bubble Tea model for browsing save slots.
type SavesModel struct {
	store    SlotBrowser
	slots    []storage.Slot
	table    table.Model
	help     help.Model
	keys     SavesKeyMap
	width    int
	height   int
	err      error
	selected string
	quitting bool
	back     bool
}

// NewSavesModel creates a saves browser and loads the slot list.
func NewSavesModel(store SlotBrowser, width, height int) SavesModel {
	h := help.New()
	h.ShowAll = false

	m := SavesModel{
		store:  store,
		keys:   DefaultSavesKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadSlots()

	return m
}

// createTable creates the slot table sized to the window.
func (m *SavesModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Slot", Width: 16},
		{Title: "Score", Width: 10},
		{Title: "Max tile", Width: 9},
		{Title: "Moves", Width: 7},
		{Title: "Last played", Width: 16},
	}

	// Leave room for header, help, and margins
	height := core.Clamp(m.height-8, 3, maxTableRows)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSlots refreshes the slot list from the store.
func (m *SavesModel) loadSlots() {
	m.slots = nil
	m.err = nil
	if m.store != nil {
		m.slots, m.err = m.store.ListSlots()
	}
	m.table.SetRows(slotRows(m.slots))
	m.table.GotoTop()
}

// slotRows converts slots to table rows.
func slotRows(slots []storage.Slot) []table.Row {
	rows := make([]table.Row, len(slots))
	for i, s := range slots {
		name := s.Name
		if s.Over() {
			name += " (over)"
		}
		rows[i] = table.Row{
			name,
			humanize.Comma(int64(s.Score)),
			strconv.Itoa(s.MaxTile()),
			strconv.Itoa(s.Moves),
			humanize.Time(s.UpdatedAt),
		}
	}
	return rows
}

// Init initializes the saves model.
func (m SavesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the saves browser.
func (m SavesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if slot, ok := m.current(); ok {
				m.selected = slot.Name
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if slot, ok := m.current(); ok {
				if err := m.store.DeleteSlot(slot.Name); err != nil {
					m.err = err
					return m, nil
				}
				m.loadSlots()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(slotRows(m.slots))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// current returns the highlighted slot.
func (m SavesModel) current() (storage.Slot, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.slots) {
		return storage.Slot{}, false
	}
	return m.slots[i], true
}

// View renders the saves browser.
func (m SavesModel) View() string {
	if m.quitting || m.back || m.selected != "" {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.MarginBottom(1).Render(centerText("SAVED GAMES", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(placeCenter(boxStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(statusStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m SavesModel) renderTableContent() string {
	if len(m.slots) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No saved games yet.\nQuit a game in progress to save it!")
	}

	return m.table.View()
}

// Selected returns the slot chosen for resuming, or "".
func (m SavesModel) Selected() string {
	return m.selected
}

// IsGoingBack returns true if user wants to go back to menu.
func (m SavesModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m SavesModel) IsQuitting() bool {
	return m.quitting
}

// SavesResult holds the outcome of the saves browser.
type SavesResult struct {
	Slot string // Slot to resume; empty when none was chosen
	Back bool
}

// RunSaves runs the saves browser.
func RunSaves(store SlotBrowser, width, height int) (SavesResult, error) {
	p := tea.NewProgram(
		NewSavesModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return SavesResult{}, err
	}

	m, ok := finalModel.(SavesModel)
	if !ok {
		return SavesResult{}, nil
	}

	return SavesResult{Slot: m.Selected(), Back: m.IsGoingBack()}, nil
}
