package model

// Color identifies the occupant of a board cell
type Color string

const (
	Empty Color = ""
	Red   Color = "red"
	Blue  Color = "blue"
)

// Marker returns the character used when rendering a cell
func (c Color) Marker() rune {
	switch c {
	case Red:
		return 'R'
	case Blue:
		return 'B'
	default:
		return ' '
	}
}

// Opponent returns the other playing color, or Empty for Empty
func (c Color) Opponent() Color {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return Empty
	}
}

// IsPlayer returns true for Red and Blue
func (c Color) IsPlayer() bool {
	return c == Red || c == Blue
}
