package searcher

import "maginet/game"

// winScore is the evaluation of a decided game.
const winScore = 99999

// Evaluate scores the position, positive in favour of red. Terminal states
// evaluate to the win score; otherwise the mana difference dominates
// quadratically, so decisive damage beats positional drift, with a centre
// advantage as the positional term.
func Evaluate(g *game.Game) int {
	if result, over := g.Result(); over {
		switch {
		case result.Stalemate:
			return 0
		case result.Winner == game.TeamRed:
			return winScore
		default:
			return -winScore
		}
	}

	board := g.Board()
	corner := game.Position{X: int8(board.Width) - 1, Y: int8(board.Height) - 1}

	posAdv := 0
	for _, mage := range g.Mages() {
		if !mage.IsAlive() {
			continue
		}

		doubled := game.Position{X: mage.Position.X * 2, Y: mage.Position.Y * 2}
		centreDist := doubled.Sub(corner).Length()

		if mage.Team == game.TeamRed {
			posAdv -= centreDist
		} else {
			posAdv += centreDist
		}
	}

	manaDiff := g.ManaDifference()

	return manaDiff*manaDiff*sign(manaDiff)*20 + posAdv*5
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
