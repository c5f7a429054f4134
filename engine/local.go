// Package engine runs local matches between two search agents.
package engine

import (
	"github.com/rs/zerolog/log"

	"maginet/game"
	"maginet/searcher"
)

// MaxTurns caps runaway matches with the stalemate counter disabled.
const MaxTurns = 500

// Agent is one seeded computer player. Depth zero selects the automatic
// principal-variation search.
type Agent struct {
	Depth int
	Seed  uint64
}

// FindTurn returns the agent's turn for the given position.
func (a Agent) FindTurn(g *game.Game) (searcher.TurnLeaf, bool) {
	if a.Depth > 0 {
		return searcher.BestTurn(g, a.Depth, a.Seed)
	}
	return searcher.BestTurnAuto(g, a.Seed)
}

// Engine drives one game between two agents, red first.
type Engine struct {
	Game   *game.Game
	Agents [2]Agent
}

// LocalEngine builds an engine over a fresh game of the level.
func LocalEngine(level game.Level, canStalemate bool, red, blue Agent) (*Engine, error) {
	g, err := game.NewGame(level, canStalemate)
	if err != nil {
		return nil, err
	}

	return &Engine{Game: g, Agents: [2]Agent{red, blue}}, nil
}

// Run executes the game loop until a result or the turn cap, and returns
// the result.
func (e *Engine) Run() (game.GameResult, bool) {
	log.Info().Stringer("starting_team", e.Game.StartingTeam()).Msg("match starting")

	for e.Game.Turns() < MaxTurns {
		if result, over := e.Game.Result(); over {
			log.Info().
				Int("turns", e.Game.Turns()).
				Bool("stalemate", result.Stalemate).
				Stringer("winner", result.Winner).
				Msg("match over")
			return result, true
		}

		team := e.Game.TurnFor()
		agent := e.Agents[0]
		if team == game.TeamBlue {
			agent = e.Agents[1]
		}

		leaf, ok := agent.FindTurn(e.Game)
		if !ok {
			break
		}

		hits, ok := e.Game.TakeMove(leaf.Turn.From, leaf.Turn.To)
		if !ok {
			log.Warn().
				Stringer("team", team).
				Interface("turn", leaf.Turn).
				Msg("search returned an illegal turn")
			break
		}

		log.Debug().
			Stringer("team", team).
			Interface("turn", leaf.Turn).
			Int("score", leaf.Score).
			Int("hits", len(hits)).
			Msgf("turn %d taken", e.Game.Turns())
	}

	result, over := e.Game.Result()
	return result, over
}

// Simulate plays n self-play games from the level, each capped at fifty
// turns, and returns the finished games.
func Simulate(level game.Level, n int, seed uint64) []*game.Game {
	games := make([]*game.Game, 0, n)

	for m := 0; m < n; m++ {
		g, err := game.NewGame(level, true)
		if err != nil {
			log.Error().Err(err).Msg("level rejected")
			return games
		}

		for i := 0; i < 50; i++ {
			leaf, ok := searcher.BestTurn(g, 5, seed+uint64(m)+uint64(i))
			if !ok {
				break
			}

			g.TakeMove(leaf.Turn.From, leaf.Turn.To)

			if _, over := g.Result(); over {
				break
			}
		}

		games = append(games, g)
	}

	return games
}
