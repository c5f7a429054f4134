package game

// Turn is a single move: the tile a mage moves from and the tile it moves
// to.
type Turn struct {
	From Position
	To   Position
}

// SentinelTurn returns the invalid placeholder turn used by the search at
// leaf nodes. It is never a legal move.
func SentinelTurn() Turn {
	return Turn{}
}
