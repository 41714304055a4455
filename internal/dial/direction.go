package dial

// Direction is the sense of rotation of a command.
type Direction int

const (
	// Left rotates towards lower numbers.
	Left Direction = iota + 1
	// Right rotates towards higher numbers.
	Right
)

// Sign returns -1 for Left and +1 for Right.
func (d Direction) Sign() int {
	switch d {
	case Left:
		return -1
	case Right:
		return 1
	default:
		return 0
	}
}

// String returns the single-letter form used in the input grammar.
func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "?"
	}
}

// directionOf maps a leading command byte to a Direction. Case-insensitive.
func directionOf(c byte) (Direction, bool) {
	switch c {
	case 'L', 'l':
		return Left, true
	case 'R', 'r':
		return Right, true
	default:
		return 0, false
	}
}
