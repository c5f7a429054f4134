package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoardLimits(t *testing.T) {
	for _, size := range []int{3, 6, 8} {
		_, err := NewBoard(size, size)
		require.NoError(t, err, "sizes within 3..=8 should be accepted")
	}

	for _, size := range [][2]int{{2, 6}, {6, 2}, {9, 6}, {6, 9}, {0, 0}} {
		_, err := NewBoard(size[0], size[1])
		require.ErrorIs(t, err, ErrBoardSize, "sizes outside 3..=8 should be rejected")
	}
}

func TestValidatePosition(t *testing.T) {
	board := DefaultBoard()

	for _, position := range []Position{{0, 0}, {5, 5}, {2, 3}} {
		validated, ok := board.ValidatePosition(position)
		require.True(t, ok)
		require.Equal(t, position, validated, "on-board positions should validate unchanged")
	}

	for _, position := range []Position{{-1, 0}, {0, -1}, {6, 0}, {0, 6}} {
		_, ok := board.ValidatePosition(position)
		require.False(t, ok, "off-board positions should be rejected")
	}
}

func TestClampPosition(t *testing.T) {
	board := DefaultBoard()

	require.Equal(t, Position{0, 0}, board.ClampPosition(Position{-3, -1}))
	require.Equal(t, Position{5, 5}, board.ClampPosition(Position{9, 6}))
	require.Equal(t, Position{2, 3}, board.ClampPosition(Position{2, 3}), "interior positions should be untouched")
}

func TestLocationAsPosition(t *testing.T) {
	board := DefaultBoard()

	position, ok := board.LocationAsPosition(70, 40, 10, 10, 16, 16)
	require.True(t, ok)
	require.Equal(t, Position{3, 1}, position)

	_, ok = board.LocationAsPosition(5, 40, 10, 10, 16, 16)
	require.False(t, ok, "locations left of the board should be rejected")

	_, ok = board.LocationAsPosition(10+6*16, 40, 10, 10, 16, 16)
	require.False(t, ok, "locations past the last column should be rejected")
}

func TestPlaceMages(t *testing.T) {
	board := DefaultBoard()

	blue := board.PlaceMages(TeamBlue, DefaultLoadout(), 0)
	require.Len(t, blue, 4)
	for i, mage := range blue {
		require.Equal(t, i, mage.Index)
		require.Equal(t, Position{int8(1 + i), 0}, mage.Position, "blue mages should line up on their home row")
	}

	red := board.PlaceMages(TeamRed, DefaultLoadout(), 4)
	for i, mage := range red {
		require.Equal(t, 4+i, mage.Index, "indices should continue from the offset")
		require.Equal(t, Position{int8(4 - i), 5}, mage.Position, "red mages should be aligned to face blue")
	}
}

func TestPlaceMagesTallBoard(t *testing.T) {
	board, err := NewBoard(8, 8)
	require.NoError(t, err)

	blue := board.PlaceMages(TeamBlue, DefaultLoadout(), 0)
	require.Equal(t, Position{2, 1}, blue[0].Position, "tall boards should pull mages one row in")
}

func TestBoardStyleCycle(t *testing.T) {
	style := StyleGrass
	for i := 0; i < 5; i++ {
		style = style.Next()
	}
	require.Equal(t, StyleGrass, style, "the playable styles should cycle")
	require.Equal(t, StyleGrass, StyleTeleport.Next(), "the teleport style should fall back into the cycle")
}
