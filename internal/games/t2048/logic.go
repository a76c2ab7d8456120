// Package t2048 implements the 2048 board engine: sliding, merging,
// spawning and game-over detection on a fixed 4x4 grid.
package t2048

import "strings"

// Direction represents a move direction.
// The zero value is not a valid direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four valid directions.
var Directions = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection parses a direction name or its first letter, ignoring case.
// Returns DirNone and false for anything else.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, true
	case "down", "d":
		return DirDown, true
	case "left", "l":
		return DirLeft, true
	case "right", "r":
		return DirRight, true
	}
	return DirNone, false
}

// BoardSize is the board dimension.
const BoardSize = 4

// Grid is the 4x4 board. 0 marks an empty cell.
type Grid [BoardSize][BoardSize]int

type row = [BoardSize]int

// compactRow slides nonzero values toward index 0, keeping their order.
func compactRow(r row) row {
	var result row
	writePos := 0
	for _, v := range r {
		if v == 0 {
			continue
		}
		result[writePos] = v
		writePos++
	}
	return result
}

// mergeRow combines equal neighbours scanning from index 0.
// The trailing cell of a merge is zeroed, so it cannot merge again in the
// same pass.
func mergeRow(r row) (row, int) {
	score := 0
	for i := 0; i < BoardSize-1; i++ {
		if r[i] != 0 && r[i] == r[i+1] {
			r[i] *= 2
			score += r[i]
			r[i+1] = 0
		}
	}
	return r, score
}

// reverseRow reverses a row.
func reverseRow(r row) row {
	var result row
	for i := range BoardSize {
		result[i] = r[BoardSize-1-i]
	}
	return result
}

// transpose returns the matrix transpose.
func transpose(g Grid) Grid {
	var result Grid
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = g[x][y]
		}
	}
	return result
}

// alongRows runs fn on every line of the grid oriented so that index 0 is
// the edge being moved toward, then restores the orientation.
func alongRows(g Grid, dir Direction, fn func(row) (row, int)) (Grid, int) {
	switch dir {
	case DirLeft:
		total := 0
		for y := range BoardSize {
			var s int
			g[y], s = fn(g[y])
			total += s
		}
		return g, total
	case DirRight:
		total := 0
		for y := range BoardSize {
			r, s := fn(reverseRow(g[y]))
			g[y] = reverseRow(r)
			total += s
		}
		return g, total
	case DirUp:
		t, s := alongRows(transpose(g), DirLeft, fn)
		return transpose(t), s
	case DirDown:
		t, s := alongRows(transpose(g), DirRight, fn)
		return transpose(t), s
	default:
		return g, 0
	}
}

// Compact slides every tile toward the edge named by dir without merging.
// Left and up compact toward index 0, right and down toward the last index.
func Compact(g Grid, dir Direction) Grid {
	out, _ := alongRows(g, dir, func(r row) (row, int) {
		return compactRow(r), 0
	})
	return out
}

// Merge combines equal adjacent tiles along dir, starting from the edge
// being moved toward. Returns the new grid and the sum of merged values.
func Merge(g Grid, dir Direction) (Grid, int) {
	return alongRows(g, dir, mergeRow)
}

// ApplyDirection runs compact, merge, compact in the given direction.
// Returns the new grid, the score gained, and false if dir is not a valid
// direction (in which case the grid is returned unchanged).
func ApplyDirection(g Grid, dir Direction) (Grid, int, bool) {
	if !dir.Valid() {
		return g, 0, false
	}
	g = Compact(g, dir)
	g, score := Merge(g, dir)
	return Compact(g, dir), score, true
}

// Cell is a board coordinate.
type Cell struct {
	Row, Col int
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(g Grid) []Cell {
	var cells []Cell
	for y := range BoardSize {
		for x := range BoardSize {
			if g[y][x] == 0 {
				cells = append(cells, Cell{Row: y, Col: x})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g Grid) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			if g[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any right or bottom neighbours are equal.
func HasPossibleMerge(g Grid) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := g[y][x]
			if x < BoardSize-1 && g[y][x+1] == val {
				return true
			}
			if y < BoardSize-1 && g[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// IsTerminal reports whether the game is over: no empty cell and no equal
// right or bottom neighbour anywhere on the board.
func IsTerminal(g Grid) bool {
	return !HasEmptyCell(g) && !HasPossibleMerge(g)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(g Grid) int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			maxVal = max(maxVal, g[y][x])
		}
	}
	return maxVal
}

// Sum returns the total of all cell values.
func Sum(g Grid) int {
	total := 0
	for y := range BoardSize {
		for x := range BoardSize {
			total += g[y][x]
		}
	}
	return total
}
