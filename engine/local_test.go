package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"maginet/game"
)

func TestLocalEngineRunsToCompletion(t *testing.T) {
	red := Agent{Depth: 2, Seed: 1}
	blue := Agent{Depth: 2, Seed: 2}

	e, err := LocalEngine(game.DefaultLevel(), true, red, blue)
	require.NoError(t, err)

	result, over := e.Run()
	require.True(t, over, "a stalemate-enabled match should always decide")
	require.Positive(t, e.Game.Turns())

	if !result.Stalemate {
		require.Contains(t, []game.Team{game.TeamRed, game.TeamBlue}, result.Winner)
	}
}

func TestLocalEngineRejectsBadLevel(t *testing.T) {
	level := game.DefaultLevel()
	level.Board.Height = 2

	_, err := LocalEngine(level, true, Agent{Depth: 1}, Agent{Depth: 1})
	require.ErrorIs(t, err, game.ErrBoardSize)
}

func TestSimulateDeterministic(t *testing.T) {
	level := game.NewLevel(
		game.DefaultBoard(),
		[]game.Mage{
			game.NewMage(0, game.TeamRed, game.SortPlus, game.Position{X: 2, Y: 4}),
			game.NewMageWithMana(0, game.TeamBlue, game.SortCross,
				game.Mana{Current: 2, Max: 4}, game.Position{X: 3, Y: 1}),
		},
		nil,
		game.TeamRed,
	)

	first := Simulate(level, 2, 9)
	second := Simulate(level, 2, 9)
	require.Len(t, first, 2)

	for i := range first {
		require.Equal(t, first[i].TurnsSince(0), second[i].TurnsSince(0),
			"equal seeds should replay identical games")
	}
}
