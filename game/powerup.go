package game

// PowerUp is a pickup lying on a tile until a mage moves onto it.
type PowerUp uint8

const (
	// PowerUpShield puts the holder in defensive mode: it deals no pattern
	// damage and reflects attacks landing inside its pattern.
	PowerUpShield PowerUp = iota
	// PowerUpBeam replaces the holder's next attack with the full row and
	// column of the attack tile, then is consumed.
	PowerUpBeam
	// PowerUpDiagonal unlocks the four diagonal moves.
	PowerUpDiagonal
	// PowerUpBoulder occupies a tile without being a mage.
	PowerUpBoulder
)

// Next returns the next power-up in editor order.
func (p PowerUp) Next() PowerUp {
	switch p {
	case PowerUpShield:
		return PowerUpBeam
	case PowerUpBeam:
		return PowerUpDiagonal
	case PowerUpDiagonal:
		return PowerUpBoulder
	default:
		return PowerUpShield
	}
}

// Previous returns the previous power-up in editor order.
func (p PowerUp) Previous() PowerUp {
	switch p {
	case PowerUpShield:
		return PowerUpBoulder
	case PowerUpBeam:
		return PowerUpShield
	case PowerUpDiagonal:
		return PowerUpBeam
	default:
		return PowerUpDiagonal
	}
}

// PowerUpFromByte decodes a level-code power-up byte. Unknown values map to
// the boulder so that malformed codes stay harmless.
func PowerUpFromByte(b byte) PowerUp {
	switch b {
	case 0:
		return PowerUpShield
	case 1:
		return PowerUpBeam
	case 2:
		return PowerUpDiagonal
	default:
		return PowerUpBoulder
	}
}

func (p PowerUp) String() string {
	switch p {
	case PowerUpShield:
		return "shield"
	case PowerUpBeam:
		return "beam"
	case PowerUpDiagonal:
		return "diagonal"
	default:
		return "boulder"
	}
}
