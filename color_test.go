package bgengine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Color
	}{
		{"white", White},
		{"W", White},
		{" Black ", Black},
		{"b", Black},
	} {
		c, err := ParseColor(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, c, tc.in)
	}

	_, err := ParseColor("red")
	require.ErrorIs(t, err, ErrInvalidColor)
}

func TestColorGeometry(t *testing.T) {
	require.Equal(t, Black, White.Opponent())
	require.Equal(t, White, Black.Opponent())
	require.Equal(t, NoColor, NoColor.Opponent())

	require.Equal(t, -1, White.Direction())
	require.Equal(t, 1, Black.Direction())

	require.Equal(t, 23, White.entryPoint(1))
	require.Equal(t, 18, White.entryPoint(6))
	require.Equal(t, 0, Black.entryPoint(1))
	require.Equal(t, 5, Black.entryPoint(6))

	require.Equal(t, 1, White.distance(0))
	require.Equal(t, 6, White.distance(5))
	require.Equal(t, 1, Black.distance(23))
	require.Equal(t, 6, Black.distance(18))

	for space := 0; space < numPoints; space++ {
		require.Equal(t, space < 6, White.inHome(space), "white %d", space)
		require.Equal(t, space >= 18, Black.inHome(space), "black %d", space)
	}
}
