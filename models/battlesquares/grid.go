package battlesquares

// Largest grid accepted from the outside. Real games are a few
// dozen cells wide at most.
const MaxGridSize = 1024

// Direction is one of the four cardinal directions on the grid.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Directions are always evaluated in this order by the strategy.
var Directions = [4]Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// X is the row index and Y is the column index.
// Up and down change X, left and right change Y.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

func (p Position) InBounds(gridSize int) bool {
	return p.X >= 0 && p.X < gridSize && p.Y >= 0 && p.Y < gridSize
}

// Returns the adjacent position in direction d. The result
// may lie outside the grid.
func (p Position) Move(d Direction) Position {
	switch d {
	case DirectionUp:
		p.X--
	case DirectionDown:
		p.X++
	case DirectionLeft:
		p.Y--
	case DirectionRight:
		p.Y++
	}
	return p
}

func (p Position) ManhattanDistance(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
