package game

import "errors"

// ErrBoardSize is returned when a board dimension falls outside 3..=8.
var ErrBoardSize = errors.New("board size does not conform to limits")

// BoardStyle is the cosmetic theme of a board. It has no effect on the
// rules.
type BoardStyle uint8

const (
	StyleGrass BoardStyle = iota
	StyleTeleport
	StyleDesert
	StyleFlesh
	StyleCrust
	StyleEldritch
)

// Next returns the next selectable style.
func (s BoardStyle) Next() BoardStyle {
	switch s {
	case StyleGrass:
		return StyleDesert
	case StyleDesert:
		return StyleFlesh
	case StyleFlesh:
		return StyleCrust
	case StyleCrust:
		return StyleEldritch
	default:
		return StyleGrass
	}
}

// Previous returns the previous selectable style.
func (s BoardStyle) Previous() BoardStyle {
	switch s {
	case StyleGrass:
		return StyleEldritch
	case StyleDesert:
		return StyleGrass
	case StyleFlesh:
		return StyleDesert
	case StyleCrust:
		return StyleFlesh
	case StyleEldritch:
		return StyleCrust
	default:
		return StyleGrass
	}
}

// Default size of the game board.
const (
	DefaultBoardWidth  = 6
	DefaultBoardHeight = 6
)

// Board is the playing field: a width, a height, and a cosmetic style.
type Board struct {
	Width  int
	Height int
	Style  BoardStyle
}

// NewBoard returns a board of the given size, restricted to 3..=8 on both
// axes.
func NewBoard(width, height int) (Board, error) {
	return NewBoardWithStyle(width, height, StyleGrass)
}

// NewBoardWithStyle returns a styled board of the given size, restricted to
// 3..=8 on both axes.
func NewBoardWithStyle(width, height int, style BoardStyle) (Board, error) {
	if width < 3 || width > 8 || height < 3 || height > 8 {
		return Board{}, ErrBoardSize
	}
	return Board{Width: width, Height: height, Style: style}, nil
}

// UncheckedBoard skips the size restriction, for draw-only boards.
func UncheckedBoard(width, height int, style BoardStyle) Board {
	return Board{Width: width, Height: height, Style: style}
}

// DefaultBoard returns the standard 6-by-6 grass board.
func DefaultBoard() Board {
	return Board{Width: DefaultBoardWidth, Height: DefaultBoardHeight}
}

// PlaceMages returns the team's mages indexed from offset and positioned in
// the standard arrangement: centered horizontally on the team's home row,
// one row in on tall boards.
func (b Board) PlaceMages(team Team, sorts []MageSort, offset int) []Mage {
	xOffset := int8((b.Width - len(sorts)) / 2)
	var y int8
	if b.Height >= 7 {
		y = 1
	}

	mages := make([]Mage, 0, len(sorts))
	for i, sort := range sorts {
		position := Position{xOffset + int8(i), y}.Align(b, team)
		mages = append(mages, NewMage(offset+i, team, sort, position))
	}

	return mages
}

// ValidatePosition reports whether the position rests on the board,
// returning it unchanged if so.
func (b Board) ValidatePosition(position Position) (Position, bool) {
	if position == position.Wrap(int8(b.Width), int8(b.Height)) {
		return position, true
	}
	return Position{}, false
}

// ClampPosition clamps the position to rest within the board.
func (b Board) ClampPosition(position Position) Position {
	return Position{
		clamp8(position.X, 0, int8(b.Width)-1),
		clamp8(position.Y, 0, int8(b.Height)-1),
	}
}

// LocationAsPosition converts a canvas location to a board position, or
// reports false for locations off the drawn board.
func (b Board) LocationAsPosition(x, y, offsetX, offsetY, scaleX, scaleY int) (Position, bool) {
	dx, dy := x-offsetX, y-offsetY
	position := Position{int8(dx / scaleX), int8(dy / scaleY)}

	if dx >= 0 && int(position.X) < b.Width && dy >= 0 && int(position.Y) < b.Height {
		return position, true
	}
	return Position{}, false
}

func clamp8(x, lo, hi int8) int8 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
