package searcher

import (
	"golang.org/x/exp/rand"

	"maginet/game"
)

// Alphabeta runs a classical minimax with alpha-beta pruning, red
// maximizing and blue minimizing. Leaves take a small seeded perturbation so
// equal lines break ties reproducibly. Children are visited in generation
// order; the first available turn is the fallback when nothing improves.
func Alphabeta(g *game.Game, depth, alpha, beta int, rng *rand.Rand) TurnLeaf {
	if depth == 0 {
		return TurnLeaf{
			Turn:  game.SentinelTurn(),
			Score: Evaluate(g) + int(rng.Uint64()%8),
		}
	}

	available := g.AvailableTurns()

	bestTurn := game.SentinelTurn()
	if len(available) > 0 {
		bestTurn = available[0]
	}

	if g.TurnFor() == game.TeamRed {
		value := scoreMin
		for _, turn := range available {
			next := g.Clone()
			next.TakeMove(turn.From, turn.To)

			leaf := Alphabeta(next, depth-1, alpha, beta, rng)
			if leaf.Score > value {
				value = leaf.Score
				if value > alpha {
					alpha = value
				}
				bestTurn = turn
			}

			if value >= beta {
				break
			}
		}
		return TurnLeaf{Turn: bestTurn, Score: value}
	}

	value := scoreMax
	for _, turn := range available {
		next := g.Clone()
		next.TakeMove(turn.From, turn.To)

		leaf := Alphabeta(next, depth-1, alpha, beta, rng)
		if leaf.Score < value {
			value = leaf.Score
			if value < beta {
				beta = value
			}
			bestTurn = turn
		}

		if value <= alpha {
			break
		}
	}
	return TurnLeaf{Turn: bestTurn, Score: value}
}
