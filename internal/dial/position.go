package dial

const (
	// Size is the number of positions on the dial.
	Size = 100
	// Start is the position every run begins at.
	Start = 50
)

// Normalize maps any integer onto [0, Size). Correct for negative values.
func Normalize(v int) int {
	return ((v % Size) + Size) % Size
}

// Move applies a signed displacement to a position and normalizes the
// result. It is the only position update used by the counting rules.
func Move(pos, delta int) int {
	return Normalize(Normalize(pos) + Normalize(delta))
}
