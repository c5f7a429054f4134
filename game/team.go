package game

// Team identifies one of the two sides. Red is the zero value and the
// default starting team.
type Team uint8

const (
	TeamRed Team = iota
	TeamBlue
)

// Enemy returns the opposing team.
func (t Team) Enemy() Team {
	if t == TeamRed {
		return TeamBlue
	}
	return TeamRed
}

// TeamFromIndex decodes a team from its serialized index.
func TeamFromIndex(index int) Team {
	if index == 0 {
		return TeamRed
	}
	return TeamBlue
}

func (t Team) String() string {
	if t == TeamRed {
		return "red"
	}
	return "blue"
}
