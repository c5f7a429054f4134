package game

// MageSort is the distinct kind of a mage, determining its spell pattern.
type MageSort uint8

const (
	SortDiamond MageSort = iota
	SortCross
	SortKnight
	SortSpike
	SortPlus
)

// Next rotates the sort right, wrapping around.
func (s MageSort) Next() MageSort {
	return (s + 1) % 5
}

// Previous rotates the sort left, wrapping around.
func (s MageSort) Previous() MageSort {
	return (s + 4) % 5
}

// MageSortFromByte decodes a level-code sort byte. Unknown values map to the
// plus mage.
func MageSortFromByte(b byte) MageSort {
	if b > byte(SortPlus) {
		return SortPlus
	}
	return MageSort(b)
}

func (s MageSort) String() string {
	switch s {
	case SortDiamond:
		return "diamond"
	case SortCross:
		return "cross"
	case SortKnight:
		return "knight"
	case SortSpike:
		return "spike"
	default:
		return "plus"
	}
}

// Mage is a playable unit. Index is assigned at Level construction and is
// the unit's identity; everything else is mutable game state.
type Mage struct {
	Index    int
	Position Position
	Sort     MageSort
	Mana     Mana
	Team     Team
	Spell    Spell
	PowerUp  *PowerUp
}

// NewMage returns a mage with the sort's spell and a full mana pool.
func NewMage(index int, team Team, sort MageSort, position Position) Mage {
	return Mage{
		Index:    index,
		Position: position,
		Sort:     sort,
		Mana:     SelectMana(sort),
		Team:     team,
		Spell:    SelectSpell(sort),
	}
}

// NewMageWithMana returns a mage with an explicit mana pool, for the level
// editor and the codec.
func NewMageWithMana(index int, team Team, sort MageSort, mana Mana, position Position) Mage {
	mage := NewMage(index, team, sort, position)
	mage.Mana = mana
	return mage
}

// IsAlive reports whether the mage still has mana. A sleeping mage keeps
// blocking its tile but no longer acts.
func (m *Mage) IsAlive() bool {
	return m.Mana.Current > 0
}

// HasDiagonals reports whether the mage may take the four diagonal moves.
func (m *Mage) HasDiagonals() bool {
	return m.PowerUp != nil && *m.PowerUp == PowerUpDiagonal
}

// IsDefensive reports whether the mage is in shield mode.
func (m *Mage) IsDefensive() bool {
	return m.PowerUp != nil && *m.PowerUp == PowerUpShield
}

// Targets returns the mage's spell pattern translated to at, restricted to
// the board.
func (m *Mage) Targets(board Board, at Position) []Position {
	targets := make([]Position, 0, len(m.Spell.Pattern))

	for _, dir := range m.Spell.Pattern {
		if position, ok := board.ValidatePosition(at.Add(dir)); ok {
			targets = append(targets, position)
		}
	}

	return targets
}

// holdPowerUp attaches a power-up to the mage.
func (m *Mage) holdPowerUp(p PowerUp) {
	held := p
	m.PowerUp = &held
}

// MageList is the ordered mage roster of a level, with tile occupancy
// helpers.
type MageList []Mage

// Occupant returns the mage on the given tile, sleeping or not.
func (ml MageList) Occupant(at Position) *Mage {
	for i := range ml {
		if ml[i].Position == at {
			return &ml[i]
		}
	}
	return nil
}

// Occupied reports whether any mage, sleeping or not, blocks the tile.
func (ml MageList) Occupied(at Position) bool {
	return ml.Occupant(at) != nil
}

// LiveOccupant returns the live mage on the given tile.
func (ml MageList) LiveOccupant(at Position) *Mage {
	for i := range ml {
		if ml[i].IsAlive() && ml[i].Position == at {
			return &ml[i]
		}
	}
	return nil
}

// LiveOccupied reports whether a live mage holds the tile.
func (ml MageList) LiveOccupied(at Position) bool {
	return ml.LiveOccupant(at) != nil
}

// LiveOccupiedBy reports whether a live mage of the given team holds the
// tile.
func (ml MageList) LiveOccupiedBy(at Position, team Team) bool {
	occupant := ml.LiveOccupant(at)
	return occupant != nil && occupant.Team == team
}

// clone deep-copies the roster. Spell patterns are immutable and stay
// shared.
func (ml MageList) clone() MageList {
	mages := make(MageList, len(ml))
	copy(mages, ml)
	for i := range mages {
		if ml[i].PowerUp != nil {
			held := *ml[i].PowerUp
			mages[i].PowerUp = &held
		}
	}
	return mages
}
