package bgengine

import "fmt"

type Player struct {
	Color Color
	Name  string
}

// NewPlayer returns a player for the given color. A blank name is replaced
// with the color's default name.
func NewPlayer(c Color, name string) (Player, error) {
	if !c.Valid() {
		return Player{}, fmt.Errorf("new player %q: %w", name, ErrInvalidColor)
	}
	if name == "" {
		name = defaultName(c)
	}
	return Player{
		Color: c,
		Name:  name,
	}, nil
}

func defaultName(c Color) string {
	switch c {
	case White:
		return "White"
	default:
		return "Black"
	}
}
