package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func customLevel(t *testing.T) Level {
	t.Helper()

	board, err := NewBoard(5, 7)
	require.NoError(t, err)

	mages := []Mage{
		NewMage(0, TeamRed, SortKnight, Position{1, 5}),
		NewMageWithMana(0, TeamBlue, SortSpike, Mana{Current: 2, Max: 4}, Position{3, 1}),
		NewMageWithMana(0, TeamBlue, SortPlus, Mana{Current: 1, Max: 3}, Position{0, 0}),
	}

	powerups := map[Position]PowerUp{
		{2, 3}: PowerUpBeam,
		{4, 4}: PowerUpShield,
		{0, 6}: PowerUpBoulder,
	}

	return NewLevel(board, mages, powerups, TeamBlue)
}

func TestLevelByteLayout(t *testing.T) {
	level := NewLevel(
		DefaultBoard(),
		[]Mage{NewMage(0, TeamBlue, SortCross, Position{2, 4})},
		map[Position]PowerUp{{1, 3}: PowerUpDiagonal},
		TeamRed,
	)

	bytes := level.Bytes()
	require.Len(t, bytes, 2+3+1+2)

	require.Equal(t, byte(0b101_101_00), bytes[0], "board byte should pack width, height, and starting team")
	require.Equal(t, byte(1), bytes[1], "mage count")
	require.Equal(t, byte(0b010_100_01), bytes[2], "mage byte should pack position and team")
	require.Equal(t, byte(SortCross), bytes[3])
	require.Equal(t, byte(0b0100_0100), bytes[4], "mana byte should pack current and max")
	require.Equal(t, byte(1), bytes[5], "power-up count")
	require.Equal(t, byte(0b001_011_00), bytes[6], "power-up byte should pack position")
	require.Equal(t, byte(PowerUpDiagonal), bytes[7])
}

func TestLevelBytesRoundTrip(t *testing.T) {
	for name, level := range map[string]Level{
		"default": DefaultLevel(),
		"custom":  customLevel(t),
	} {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, level, LevelFromBytes(level.Bytes()), "decoding should reproduce the level")
		})
	}
}

func TestLevelCodeRoundTrip(t *testing.T) {
	level := customLevel(t)
	code := level.Code()

	require.NotEmpty(t, code)
	for _, r := range code {
		require.Contains(t, "0123456789abcdefghjkmnpqrstvwxyz", string(r), "codes should stay within the Crockford alphabet")
	}

	require.Equal(t, level, LevelFromCode(code))
}

func TestLevelCodeDeterministic(t *testing.T) {
	level := customLevel(t)
	code := level.Code()
	for i := 0; i < 16; i++ {
		require.Equal(t, code, customLevel(t).Code(), "encoding should not depend on map iteration order")
	}
}

func TestMalformedCodesDecodeToDefault(t *testing.T) {
	fallback := DefaultLevel()

	for _, code := range []string{"not-a-code", "UPPER", "", "zzzzzzzzzzzz"} {
		t.Run("code "+code, func(t *testing.T) {
			require.Equal(t, fallback, LevelFromCode(code), "unreadable codes should degrade to the default level")
		})
	}
}

func TestMalformedBytesDecodeToDefault(t *testing.T) {
	fallback := DefaultLevel()

	require.Equal(t, fallback, LevelFromBytes(nil))
	require.Equal(t, fallback, LevelFromBytes([]byte{0b101_101_00}), "a lone board byte should not decode")
	require.Equal(t, fallback, LevelFromBytes([]byte{0b101_101_00, 9, 1}), "truncated mage data should not decode")
	require.Equal(t, fallback, LevelFromBytes([]byte{0b000_000_00, 0, 0}), "boards below the minimum size should not decode")
}

func TestUnknownBytesClampToDefaults(t *testing.T) {
	level := NewLevel(
		DefaultBoard(),
		[]Mage{NewMage(0, TeamRed, SortDiamond, Position{2, 2})},
		map[Position]PowerUp{{4, 4}: PowerUpShield},
		TeamRed,
	)

	bytes := level.Bytes()
	bytes[3] = 0xff // mage sort
	bytes[7] = 0xff // power-up

	decoded := LevelFromBytes(bytes)
	require.Equal(t, SortPlus, decoded.Mages[0].Sort, "unknown sorts should map to plus")
	require.Equal(t, PowerUpBoulder, decoded.PowerUps[Position{4, 4}], "unknown power-ups should map to the boulder")
}
