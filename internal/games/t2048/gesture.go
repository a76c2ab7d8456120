package t2048

import "math"

// DirectionFromDelta maps a drag displacement to a direction.
// The dominant axis wins; ties go to the vertical axis. Positive dy points
// down. A zero displacement resolves to DirUp, so callers should filter
// short drags before calling.
func DirectionFromDelta(dx, dy float64) Direction {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	}
	if dy > 0 {
		return DirDown
	}
	return DirUp
}
