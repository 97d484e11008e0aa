package entity

// Direction is a movement direction on the playfield.
type Direction int

const (
	Down Direction = iota
	Up
	Left
	Right
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Reverse returns the opposite horizontal direction.
// Anything that is not Right turns Right.
func (d Direction) Reverse() Direction {
	if d == Right {
		return Left
	}
	return Right
}
