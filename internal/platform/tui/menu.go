package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// MenuChoice is what the user picked on the start menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceNewGame
	ChoiceResume
	ChoiceQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Choice   MenuChoice
	Title    string
	Disabled bool
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	selected  MenuChoice
}

// NewMenuModel creates a new menu model. Resume is disabled when there are
// no saved games.
func NewMenuModel(hasSaves bool, cfg core.RuntimeConfig) MenuModel {
	items := []MenuItem{
		{Choice: ChoiceNewGame, Title: "New game"},
		{Choice: ChoiceResume, Title: "Resume saved game", Disabled: !hasSaves},
		{Choice: ChoiceQuit, Title: "Quit"},
	}

	return MenuModel{
		items:     items,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.selected = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = m.step(-1)

	case MenuActionDown:
		m.cursor = m.step(1)

	case MenuActionSelect:
		item := m.items[m.cursor]
		if item.Disabled {
			return m, nil
		}
		m.selected = item.Choice
		return m, tea.Quit
	}

	return m, nil
}

// step moves the cursor by delta, skipping disabled items.
func (m MenuModel) step(delta int) int {
	for i := m.cursor + delta; i >= 0 && i < len(m.items); i += delta {
		if !m.items[i].Disabled {
			return i
		}
	}
	return m.cursor
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.selected != ChoiceNone {
		return ""
	}

	width := m.config.ScreenW
	disabled := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  2 0 4 8  "), width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		switch {
		case item.Disabled:
			line = disabled.Render(line)
		case i == m.cursor:
			line = active.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone while the menu is open.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the start menu and returns the selection.
func RunMenu(hasSaves bool, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(hasSaves, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == ChoiceNone {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{Choice: m.Selected(), Config: m.Config()}, nil
}
