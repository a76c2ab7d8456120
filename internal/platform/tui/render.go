package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

const (
	tileWidth  = 8
	tileHeight = 3
)

// Colours follow the classic 2048 palette.
var (
	boardColor = lipgloss.Color("#bbada0")
	emptyColor = lipgloss.Color("#cdc1b4")
	darkText   = lipgloss.Color("#776e65")
	lightText  = lipgloss.Color("#f9f6f2")
)

var tileColors = map[int]lipgloss.Color{
	2:    lipgloss.Color("#eee4da"),
	4:    lipgloss.Color("#ede0c8"),
	8:    lipgloss.Color("#f2b179"),
	16:   lipgloss.Color("#f59563"),
	32:   lipgloss.Color("#f67c5f"),
	64:   lipgloss.Color("#f65e3b"),
	128:  lipgloss.Color("#edcf72"),
	256:  lipgloss.Color("#edcc61"),
	512:  lipgloss.Color("#edc850"),
	1024: lipgloss.Color("#edc53f"),
	2048: lipgloss.Color("#edc22e"),
}

var (
	tileBase = lipgloss.NewStyle().
			Width(tileWidth).
			Height(tileHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Bold(true)

	// Each tile carries its gap on the left and top; the board adds the
	// closing gap on the right and bottom.
	gapStyle   = lipgloss.NewStyle().Background(boardColor).PaddingLeft(1).PaddingTop(1)
	boardStyle = lipgloss.NewStyle().Background(boardColor).PaddingRight(1).PaddingBottom(1)

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#f65e3b")).
			Foreground(lipgloss.Color("229")).
			Bold(true).
			Padding(0, 2)
)

// tileStyle returns the style for a tile value.
func tileStyle(value int) lipgloss.Style {
	if value == 0 {
		return tileBase.Background(emptyColor)
	}

	bg, ok := tileColors[value]
	if !ok {
		bg = lipgloss.Color("#3c3a32")
	}

	fg := lightText
	if value <= 4 {
		fg = darkText
	}
	return tileBase.Background(bg).Foreground(fg)
}

// renderBoard draws the grid as coloured tiles.
func renderBoard(g t2048.Grid, theme t2048.Theme) string {
	rows := make([]string, 0, t2048.BoardSize)
	for y := range t2048.BoardSize {
		cells := make([]string, 0, t2048.BoardSize)
		for x := range t2048.BoardSize {
			v := g[y][x]
			cells = append(cells, gapStyle.Render(tileStyle(v).Render(t2048.Label(v, theme))))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// placeCenter centers every line of a block within width.
func placeCenter(block string, width int) string {
	if width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
