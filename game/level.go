package game

// Level is the initial configuration a Game is built from: the board, the
// mage roster, the power-ups on the ground, and who moves first. Levels are
// never mutated by play; games clone them.
type Level struct {
	Board        Board
	Mages        MageList
	MageIndex    int
	PowerUps     map[Position]PowerUp
	StartingTeam Team
}

// NewLevel assembles a level, rewriting each mage's index to its position in
// the roster.
func NewLevel(board Board, mages []Mage, powerups map[Position]PowerUp, startingTeam Team) Level {
	roster := make(MageList, len(mages))
	copy(roster, mages)
	for i := range roster {
		roster[i].Index = i
	}

	if powerups == nil {
		powerups = map[Position]PowerUp{}
	}

	return Level{
		Board:        board,
		Mages:        roster,
		MageIndex:    len(roster),
		PowerUps:     powerups,
		StartingTeam: startingTeam,
	}
}

// DefaultLoadout is the standard four-mage lineup each team starts with.
func DefaultLoadout() []MageSort {
	return []MageSort{SortDiamond, SortSpike, SortKnight, SortCross}
}

// LoadoutMages places a loadout for each team on the board in the standard
// arrangement.
func LoadoutMages(board Board, redSorts, blueSorts []MageSort) []Mage {
	mages := make([]Mage, 0, len(redSorts)+len(blueSorts))
	mages = append(mages, board.PlaceMages(TeamRed, redSorts, 0)...)
	mages = append(mages, board.PlaceMages(TeamBlue, blueSorts, len(mages))...)
	return mages
}

// DefaultLevel returns the playable 6-by-6 standard-placement level with red
// to move. Malformed level codes decode to this.
func DefaultLevel() Level {
	return DefaultLevelWithMages(LoadoutMages(DefaultBoard(), DefaultLoadout(), DefaultLoadout()))
}

// DefaultLevelWithMages returns a level with default parameters but the
// provided mages.
func DefaultLevelWithMages(mages []Mage) Level {
	return NewLevel(DefaultBoard(), mages, nil, TeamRed)
}

// Clone deep-copies the level, re-asserting the roster indexing invariant.
func (l Level) Clone() Level {
	mages := l.Mages.clone()
	for i := range mages {
		mages[i].Index = i
	}

	powerups := make(map[Position]PowerUp, len(l.PowerUps))
	for position, powerup := range l.PowerUps {
		powerups[position] = powerup
	}

	return Level{
		Board:        l.Board,
		Mages:        mages,
		MageIndex:    l.MageIndex,
		PowerUps:     powerups,
		StartingTeam: l.StartingTeam,
	}
}
