package world

import "strings"

// Direction represents one of the four movement directions
type Direction int

// Direction constants
const (
	Up Direction = iota
	Right
	Down
	Left
)

// AllDirections returns all valid directions in clockwise order starting from Up
func AllDirections() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the four directions
func (d Direction) IsValid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	default:
		return d
	}
}

// Delta returns the column and row offsets for this direction.
// Rows grow downwards, so Up is (0, -1).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// ParseDirection accepts the direction names used by the input layer and the
// remote API ("up", "Up", "north", "arrow_up", ...).
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "north", "arrow_up":
		return Up, true
	case "right", "east", "arrow_right":
		return Right, true
	case "down", "south", "arrow_down":
		return Down, true
	case "left", "west", "arrow_left":
		return Left, true
	default:
		return Up, false
	}
}

// MarshalText encodes the direction as its lower-case name
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(d.String())), nil
}

// UnmarshalText decodes a direction name
func (d *Direction) UnmarshalText(b []byte) error {
	parsed, ok := ParseDirection(string(b))
	if !ok {
		return &UnknownDirectionError{Name: string(b)}
	}
	*d = parsed
	return nil
}

// UnknownDirectionError is returned when a direction name cannot be parsed
type UnknownDirectionError struct {
	Name string
}

func (e *UnknownDirectionError) Error() string {
	return "unknown direction " + strings.TrimSpace(e.Name)
}
