package game

// DefaultMana is the maximum mana every mage sort starts with.
const DefaultMana uint8 = 4

// Mana tracks a mage's current and maximum mana. Current never exceeds Max;
// all arithmetic saturates.
type Mana struct {
	Current uint8
	Max     uint8
}

// ManaWithMax returns a full Mana with the given maximum.
func ManaWithMax(max uint8) Mana {
	return Mana{Current: max, Max: max}
}

// SelectMana returns the starting Mana for a mage sort. Every sort currently
// shares the same pool.
func SelectMana(_ MageSort) Mana {
	return ManaWithMax(DefaultMana)
}

// Add raises current mana, saturating at Max.
func (m Mana) Add(n uint8) Mana {
	sum := m.Current + n
	if sum < m.Current || sum > m.Max {
		sum = m.Max
	}
	return Mana{Current: sum, Max: m.Max}
}

// Sub lowers current mana, saturating at zero.
func (m Mana) Sub(n uint8) Mana {
	if n > m.Current {
		return Mana{Current: 0, Max: m.Max}
	}
	return Mana{Current: m.Current - n, Max: m.Max}
}

// byte packs the mana pair into a single level-code byte, four bits each.
func (m Mana) byte() byte {
	return (m.Current&0b1111)<<4 | m.Max&0b1111
}

// manaFromByte unpacks a level-code mana byte.
func manaFromByte(b byte) Mana {
	return Mana{Current: (b >> 4) & 0b1111, Max: b & 0b1111}
}
