package bgengine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	p, err := NewPlayer(White, "")
	require.NoError(t, err)
	require.Equal(t, Player{Color: White, Name: "White"}, p)

	p, err = NewPlayer(Black, "Ana")
	require.NoError(t, err)
	require.Equal(t, "Ana", p.Name)

	_, err = NewPlayer(Color(7), "Nobody")
	require.ErrorIs(t, err, ErrInvalidColor)
	_, err = NewPlayer(NoColor, "Nobody")
	require.ErrorIs(t, err, ErrInvalidColor)
}
