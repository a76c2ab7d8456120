package t2048

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Theme selects how tile values are displayed.
type Theme string

const (
	ThemeEmoji   Theme = "emoji"
	ThemeNumbers Theme = "numbers"
)

// ParseTheme parses a theme name.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(s)) {
	case ThemeEmoji:
		return ThemeEmoji, true
	case ThemeNumbers:
		return ThemeNumbers, true
	}
	return "", false
}

// tileIcons grows from grass to a city.
var tileIcons = map[int]string{
	2:    "🌱",
	4:    "🌿",
	8:    "🌲",
	16:   "🪵",
	32:   "⛺",
	64:   "🏕",
	128:  "🏠",
	256:  "🏘️",
	512:  "🏢",
	1024: "🏬",
	2048: "🏙️",
}

// TileIcon returns the icon for a tile value. Values without an icon,
// including 0 and anything above 2048, map to the empty string.
func TileIcon(value int) string {
	return tileIcons[value]
}

// Label returns the display text for a tile under the given theme.
// Empty cells have an empty label.
func Label(value int, theme Theme) string {
	if value == 0 {
		return ""
	}
	if theme == ThemeEmoji {
		return TileIcon(value)
	}
	return strconv.Itoa(value)
}

const textCellWidth = 6

// FormatGrid renders the grid as a fixed-width box-drawing table.
func FormatGrid(g Grid, theme Theme) string {
	var b strings.Builder

	line := func(left, mid, right string) {
		b.WriteString(left)
		for x := range BoardSize {
			b.WriteString(strings.Repeat("─", textCellWidth))
			if x < BoardSize-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		b.WriteString("\n")
	}

	line("┌", "┬", "┐")
	for y := range BoardSize {
		b.WriteString("│")
		for x := range BoardSize {
			b.WriteString(centerCell(Label(g[y][x], theme), textCellWidth))
			b.WriteString("│")
		}
		b.WriteString("\n")
		if y < BoardSize-1 {
			line("├", "┼", "┤")
		}
	}
	line("└", "┴", "┘")

	return b.String()
}

// centerCell pads s to width display columns, centred.
func centerCell(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return runewidth.Truncate(s, width, "")
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
