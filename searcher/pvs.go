package searcher

import (
	"golang.org/x/exp/rand"

	"maginet/game"
)

// PVS runs a negamax principal variation search: the first child gets the
// full window, later children a null window with a full re-search when the
// score lands strictly inside (alpha, beta). Leaf scores are from the
// perspective of the side to move.
func PVS(g *game.Game, depth, alpha, beta int, rng *rand.Rand) TurnLeaf {
	if depth == 0 {
		score := Evaluate(g)
		if g.TurnFor() == game.TeamBlue {
			score = -score
		}
		return TurnLeaf{
			Turn:  game.SentinelTurn(),
			Score: score + int(rng.Uint64()%4),
		}
	}

	available := g.AvailableTurns()

	bestTurn := game.SentinelTurn()
	if len(available) > 0 {
		bestTurn = available[0]
	}

	for i, turn := range available {
		next := g.Clone()
		next.TakeMove(turn.From, turn.To)

		var leaf TurnLeaf
		if i == 0 {
			leaf = PVS(next, depth-1, -beta, -alpha, rng).Neg()
		} else {
			leaf = PVS(next, depth-1, -(alpha + 1), -alpha, rng).Neg()
			if leaf.Score > alpha && leaf.Score < beta {
				leaf = PVS(next, depth-1, -beta, -leaf.Score, rng).Neg()
			}
		}

		if leaf.Score > alpha {
			alpha = leaf.Score
			bestTurn = turn
		}

		if alpha > beta {
			break
		}
	}

	return TurnLeaf{Turn: bestTurn, Score: alpha}
}
