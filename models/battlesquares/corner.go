package battlesquares

import (
	"strings"

	cerr "github.com/saeidalz13/battlesquares/internal/error"
)

// Corners of a grid in tie-break order: top-left, top-right,
// bottom-left, bottom-right.
func Corners(gridSize int) [4]Position {
	last := gridSize - 1
	return [4]Position{
		{X: 0, Y: 0},
		{X: 0, Y: last},
		{X: last, Y: 0},
		{X: last, Y: last},
	}
}

func IsCorner(p Position, gridSize int) bool {
	for _, c := range Corners(gridSize) {
		if p == c {
			return true
		}
	}
	return false
}

// NearestCorner returns true if p already is a corner. Otherwise it
// returns the direction toward the corner with the smallest Manhattan
// distance, e.g. "ur" or "d".
func NearestCorner(p Position, gridSize int) (bool, string, error) {
	if gridSize < 1 || gridSize > MaxGridSize {
		return false, "", cerr.ErrGridSize(gridSize, MaxGridSize)
	}
	if !p.InBounds(gridSize) {
		return false, "", cerr.ErrXorYOutOfGridBound(p.X, p.Y)
	}

	if IsCorner(p, gridSize) {
		return true, "", nil
	}

	corners := Corners(gridSize)
	nearest := corners[0]
	best := p.ManhattanDistance(nearest)
	for _, c := range corners[1:] {
		// strict comparison keeps the earlier corner on ties
		if dist := p.ManhattanDistance(c); dist < best {
			nearest, best = c, dist
		}
	}

	return false, DirectionTo(p, nearest), nil
}

// The vertical letter comes first. An axis that is already
// aligned contributes nothing.
func DirectionTo(from, to Position) string {
	var sb strings.Builder

	if to.X < from.X {
		sb.WriteString("u")
	} else if to.X > from.X {
		sb.WriteString("d")
	}

	if to.Y < from.Y {
		sb.WriteString("l")
	} else if to.Y > from.Y {
		sb.WriteString("r")
	}

	return sb.String()
}
