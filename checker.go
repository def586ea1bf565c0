package bgengine

// Checker is a single playing piece.
type Checker struct {
	color Color
}

func NewChecker(c Color) Checker {
	return Checker{color: c}
}

func (c Checker) Color() Color {
	return c.color
}
