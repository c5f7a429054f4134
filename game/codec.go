package game

import (
	"encoding/base32"

	"golang.org/x/exp/slices"
)

// base32Crockford encodes level bytes with the Crockford alphabet, no
// padding.
var base32Crockford = base32.NewEncoding("0123456789abcdefghjkmnpqrstvwxyz").
	WithPadding(base32.NoPadding)

// Bytes serializes the level to its compact byte form:
//
//	board/starting-team byte, mage count, three bytes per mage,
//	power-up count, two bytes per power-up.
//
// Power-ups are written in tile order so the same level always yields the
// same bytes.
func (l Level) Bytes() []byte {
	result := make([]byte, 0, 2+3*len(l.Mages)+1+2*len(l.PowerUps))

	boardByte := (byte(l.Board.Width-1)&0b111)<<5 |
		(byte(l.Board.Height-1)&0b111)<<2 |
		byte(l.StartingTeam)&0b11
	result = append(result, boardByte, byte(len(l.Mages)))

	for i := range l.Mages {
		result = append(result, mageBytes(&l.Mages[i])...)
	}

	result = append(result, byte(len(l.PowerUps)))

	positions := make([]Position, 0, len(l.PowerUps))
	for position := range l.PowerUps {
		positions = append(positions, position)
	}
	slices.SortFunc(positions, func(a, b Position) int {
		if a.X != b.X {
			return int(a.X) - int(b.X)
		}
		return int(a.Y) - int(b.Y)
	})

	for _, position := range positions {
		result = append(result,
			(byte(position.X)&0b111)<<5|(byte(position.Y)&0b111)<<2,
			byte(l.PowerUps[position]),
		)
	}

	return result
}

func mageBytes(mage *Mage) []byte {
	return []byte{
		(byte(mage.Position.X)&0b111)<<5 |
			(byte(mage.Position.Y)&0b111)<<2 |
			byte(mage.Team)&0b11,
		byte(mage.Sort),
		mage.Mana.byte(),
	}
}

func mageFromBytes(chunk []byte) Mage {
	posTeamByte := chunk[0]
	position := Position{
		X: int8(posTeamByte >> 5 & 0b111),
		Y: int8(posTeamByte >> 2 & 0b111),
	}
	team := TeamFromIndex(int(posTeamByte & 0b11))
	sort := MageSortFromByte(chunk[1])

	return NewMageWithMana(0, team, sort, manaFromByte(chunk[2]), position)
}

// LevelFromBytes decodes a level from its byte form. Malformed input
// degrades to the default level instead of failing.
func LevelFromBytes(value []byte) Level {
	if len(value) < 2 {
		return DefaultLevel()
	}

	boardByte := value[0]
	width := int(boardByte>>5&0b111) + 1
	height := int(boardByte>>2&0b111) + 1
	board, err := NewBoard(width, height)
	if err != nil {
		return DefaultLevel()
	}
	startingTeam := TeamFromIndex(int(boardByte & 0b11))

	numMages := int(value[1])
	if len(value) < 2+numMages*3+1 {
		return DefaultLevel()
	}

	mages := make([]Mage, 0, numMages)
	for i := 0; i < numMages; i++ {
		mages = append(mages, mageFromBytes(value[2+i*3:2+i*3+3]))
	}

	propOffset := 2 + numMages*3
	numProps := int(value[propOffset])
	if len(value) < propOffset+1+numProps*2 {
		return DefaultLevel()
	}

	powerups := make(map[Position]PowerUp, numProps)
	for i := 0; i < numProps; i++ {
		chunk := value[propOffset+1+i*2 : propOffset+1+i*2+2]
		position := Position{
			X: int8(chunk[0] >> 5 & 0b111),
			Y: int8(chunk[0] >> 2 & 0b111),
		}
		powerups[position] = PowerUpFromByte(chunk[1])
	}

	return NewLevel(board, mages, powerups, startingTeam)
}

// Code returns the level as a shareable Base32 Crockford string.
func (l Level) Code() string {
	return base32Crockford.EncodeToString(l.Bytes())
}

// LevelFromCode decodes a level code. Anything unreadable degrades to the
// default level.
func LevelFromCode(code string) Level {
	decoded, err := base32Crockford.DecodeString(code)
	if err != nil {
		return DefaultLevel()
	}
	return LevelFromBytes(decoded)
}
