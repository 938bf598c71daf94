package world

// Direction classifies the step between two grid coordinates
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
	NorthEast
	SouthEast
	SouthWest
	NorthWest
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West, NorthEast, SouthEast, SouthWest, NorthWest}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	case NorthEast:
		return "NorthEast"
	case SouthEast:
		return "SouthEast"
	case SouthWest:
		return "SouthWest"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the eight compass steps
func (d Direction) IsValid() bool {
	return d >= North && d <= NorthWest
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case NorthEast:
		return SouthWest
	case SouthWest:
		return NorthEast
	case SouthEast:
		return NorthWest
	case NorthWest:
		return SouthEast
	default:
		return d
	}
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	case NorthEast:
		return -1, 1
	case SouthEast:
		return 1, 1
	case SouthWest:
		return 1, -1
	case NorthWest:
		return -1, -1
	default:
		return 0, 0
	}
}

// Step returns the coordinate one step from c in direction d.
func (c Coord) Step(d Direction) Coord {
	dr, dc := d.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// DirectionBetween returns the direction from a to b when b is one of a's
// eight grid neighbours. Edges between distant cells have no direction.
func DirectionBetween(a, b Coord) (Direction, bool) {
	for _, d := range AllDirections() {
		if a.Step(d) == b {
			return d, true
		}
	}
	return 0, false
}
