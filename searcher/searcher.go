// Package searcher selects turns for the computer opponent with two
// deterministic pruning searches over cloned game states.
package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"maginet/game"
)

// Score bounds kept clear of the integer limits so negation stays safe.
const (
	scoreMin = math.MinInt + 0xff
	scoreMax = math.MaxInt - 0xff
)

// TurnLeaf is a search result: a turn and its evaluation.
type TurnLeaf struct {
	Turn  game.Turn
	Score int
}

// Neg negates the leaf's score, leaving the turn untouched.
func (l TurnLeaf) Neg() TurnLeaf {
	return TurnLeaf{Turn: l.Turn, Score: -l.Score}
}

// BestTurn searches with alpha-beta pruning to the given depth. It returns
// false on a finished game. Equal seeds on equal positions yield equal
// results.
func BestTurn(g *game.Game, depth int, seed uint64) (TurnLeaf, bool) {
	if _, over := g.Result(); over {
		return TurnLeaf{}, false
	}

	return Alphabeta(g, depth, scoreMin, scoreMax, rand.New(rand.NewSource(seed))), true
}

// BestTurnAuto searches with principal variation search, deepening as mages
// are exchanged. It returns false on a finished game.
func BestTurnAuto(g *game.Game, seed uint64) (TurnLeaf, bool) {
	if _, over := g.Result(); over {
		return TurnLeaf{}, false
	}

	extra := 0
	if alive := g.AliveMages(); alive < 2 {
		extra = (2 - alive) / 3
	}

	return PVS(g, 4+extra, scoreMin, scoreMax, rand.New(rand.NewSource(seed))), true
}
