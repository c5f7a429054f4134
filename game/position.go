package game

// Position is a reference to a tile on the game board, usable as a map key.
type Position struct {
	X int8
	Y int8
}

// Add returns the componentwise sum of two positions.
func (p Position) Add(q Position) Position {
	return Position{p.X + q.X, p.Y + q.Y}
}

// Sub returns the componentwise difference of two positions.
func (p Position) Sub(q Position) Position {
	return Position{p.X - q.X, p.Y - q.Y}
}

// Length returns the Manhattan length of the position as a vector.
func (p Position) Length() int {
	return int(abs8(p.X)) + int(abs8(p.Y))
}

// Wrap maps the position onto `[0, xmax) x [0, ymax)` as if the board were an
// infinite grid. Negative coordinates wrap around too.
func (p Position) Wrap(xmax, ymax int8) Position {
	return Position{remZero(p.X, xmax), remZero(p.Y, ymax)}
}

// Rotate rotates the position 180 degrees about the board's centre.
func (p Position) Rotate(board Board) Position {
	return Position{
		int8(board.Width) - p.X - 1,
		int8(board.Height) - p.Y - 1,
	}
}

// Align maps the position into the team's perspective: blue plays as-is, red
// is rotated to face it.
func (p Position) Align(board Board, team Team) Position {
	if team == TeamRed {
		return p.Rotate(board)
	}
	return p
}

// remZero wraps x into `0..m` via `((x % m) + m) % m`. The first remainder
// plus m lands in `0..2m`, the second brings it home.
func remZero(x, m int8) int8 {
	return ((x % m) + m) % m
}

func abs8(x int8) int8 {
	if x < 0 {
		return -x
	}
	return x
}
