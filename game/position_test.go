package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPositionArithmetic(t *testing.T) {
	require.Equal(t, Position{3, 1}, Position{1, 2}.Add(Position{2, -1}), "addition should be componentwise")
	require.Equal(t, Position{-1, 3}, Position{1, 2}.Sub(Position{2, -1}), "subtraction should be componentwise")
	require.Equal(t, 5, Position{-2, 3}.Length(), "length should be the Manhattan norm")
	require.Equal(t, 0, Position{}.Length(), "zero vector should have zero length")
}

func TestPositionWrap(t *testing.T) {
	cases := []struct {
		name     string
		position Position
		want     Position
	}{
		{"inside", Position{2, 3}, Position{2, 3}},
		{"positive overflow", Position{9, 4}, Position{1, 0}},
		{"negative", Position{-1, -5}, Position{3, 3}},
		{"far negative", Position{-9, -4}, Position{3, 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.position.Wrap(4, 4), "wrap should land in [0, max) on both axes")
		})
	}
}

func TestPositionRotateAlign(t *testing.T) {
	board := DefaultBoard()

	require.Equal(t, Position{5, 5}, Position{0, 0}.Rotate(board), "rotation should mirror about the board centre")
	require.Equal(t, Position{0, 0}, Position{0, 0}.Rotate(board).Rotate(board), "rotation should be involutive")

	require.Equal(t, Position{1, 2}, Position{1, 2}.Align(board, TeamBlue), "blue positions should be unchanged")
	require.Equal(t, Position{4, 3}, Position{1, 2}.Align(board, TeamRed), "red positions should be rotated")
}

func TestTeamEnemy(t *testing.T) {
	require.Equal(t, TeamBlue, TeamRed.Enemy())
	require.Equal(t, TeamRed, TeamBlue.Enemy())
	require.Equal(t, TeamRed, TeamRed.Enemy().Enemy(), "enemy should be involutive")
}

func TestManaSaturation(t *testing.T) {
	mana := ManaWithMax(4)

	require.Equal(t, uint8(4), mana.Add(3).Current, "current should never exceed max")
	require.Equal(t, uint8(0), mana.Sub(9).Current, "subtraction should saturate at zero")

	low := mana.Sub(3)
	require.Equal(t, uint8(1), low.Current)
	require.Equal(t, uint8(3), low.Add(2).Current)
	require.Equal(t, uint8(4), low.Max, "max should be untouched by arithmetic")
}

func TestMageSortCycle(t *testing.T) {
	sort := SortDiamond
	for i := 0; i < 5; i++ {
		require.Equal(t, sort, sort.Next().Previous(), "next then previous should round-trip")
		sort = sort.Next()
	}
	require.Equal(t, SortDiamond, sort, "five rotations should cycle back")
}

func TestSpellPatterns(t *testing.T) {
	for _, sort := range []MageSort{SortDiamond, SortCross, SortKnight, SortSpike, SortPlus} {
		require.Len(t, SelectSpell(sort).Pattern, 8, "every pattern should cover eight tiles")
	}

	require.Contains(t, SelectSpell(SortCross).Pattern, Position{1, 1})
	require.NotContains(t, SelectSpell(SortCross).Pattern, Position{1, 0})
	require.Contains(t, SelectSpell(SortPlus).Pattern, Position{0, -2})
	require.Contains(t, SelectSpell(SortKnight).Pattern, Position{2, -1})
}
