package game

// Spell is the attack a mage casts after moving: an ordered list of tiles
// relative to the mage's destination. The offsets are part of the replay
// format and must not be reordered.
type Spell struct {
	Pattern []Position
}

// SelectSpell returns the fixed spell for a mage sort.
func SelectSpell(sort MageSort) Spell {
	switch sort {
	case SortDiamond:
		return diamondMissile()
	case SortCross:
		return crossMissile()
	case SortKnight:
		return knightMissile()
	case SortSpike:
		return spikeMissile()
	default:
		return plusMissile()
	}
}

func plusMissile() Spell {
	return Spell{Pattern: []Position{
		{-2, 0},
		{-1, 0},
		{1, 0},
		{2, 0},
		{0, -2},
		{0, -1},
		{0, 1},
		{0, 2},
	}}
}

func diamondMissile() Spell {
	return Spell{Pattern: []Position{
		{-2, 0},
		{-1, -1},
		{0, -2},
		{1, -1},
		{2, 0},
		{1, 1},
		{0, 2},
		{-1, 1},
	}}
}

func crossMissile() Spell {
	return Spell{Pattern: []Position{
		{-2, -2},
		{-2, 2},
		{2, -2},
		{2, 2},
		{-1, -1},
		{-1, 1},
		{1, -1},
		{1, 1},
	}}
}

func knightMissile() Spell {
	return Spell{Pattern: []Position{
		{-2, -1},
		{-1, -2},
		{1, 2},
		{2, 1},
		{1, -2},
		{2, -1},
		{-2, 1},
		{-1, 2},
	}}
}

func spikeMissile() Spell {
	return Spell{Pattern: []Position{
		{-2, -2},
		{-2, 2},
		{2, -2},
		{2, 2},
		{-1, 0},
		{0, -1},
		{1, 0},
		{0, 1},
	}}
}
