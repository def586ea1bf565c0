package bgengine

import (
	"errors"
	"strings"
)

// Color identifies the owner of a checker. White moves from point 24 toward
// point 1 and bears off from indices 0-5. Black moves the other way.
type Color int8

const (
	NoColor Color = iota
	White
	Black
)

// ErrInvalidColor is returned when a color tag is not White or Black.
var ErrInvalidColor = errors.New("invalid color")

const (
	numPoints   = 24
	numCheckers = 15
	homeSize    = 6
)

func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	default:
		return NoColor, ErrInvalidColor
	}
}

func (c Color) Valid() bool {
	return c == White || c == Black
}

func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

// Direction is the index delta of a single pip.
func (c Color) Direction() int {
	switch c {
	case White:
		return -1
	case Black:
		return 1
	default:
		return 0
	}
}

func (c Color) inHome(idx int) bool {
	switch c {
	case White:
		return idx >= 0 && idx < homeSize
	case Black:
		return idx >= numPoints-homeSize && idx < numPoints
	default:
		return false
	}
}

// distance returns the number of pips a checker at idx needs to leave the board.
func (c Color) distance(idx int) int {
	if c == White {
		return idx + 1
	}
	return numPoints - idx
}

// entryPoint is where a checker re-enters from the bar. A die of 1 enters on
// the point farthest from the mover's exit.
func (c Color) entryPoint(die int) int {
	if c == White {
		return numPoints - die
	}
	return die - 1
}

func (c Color) index() int {
	return int(c) - 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}
