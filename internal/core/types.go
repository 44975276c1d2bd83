package core

// Size describes the dimensions of a grid or frame.
type Size struct {
	W int
	H int
}

// Point addresses a cell: X is the column, Y the row.
type Point struct {
	X int
	Y int
}

// Sparkle is the display state derived from a light.
type Sparkle uint8

const (
	// Dim is an unlit cell and the initial state of every light.
	Dim Sparkle = iota
	// Bright is a lit cell.
	Bright
)

func sparkleOf(on bool) Sparkle {
	if on {
		return Bright
	}
	return Dim
}

// String implements fmt.Stringer.
func (s Sparkle) String() string {
	switch s {
	case Bright:
		return "bright"
	case Dim:
		return "dim"
	default:
		return "unknown"
	}
}
