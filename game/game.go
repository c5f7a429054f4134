package game

// GameResult is the outcome of a finished game.
type GameResult struct {
	Winner    Team
	Stalemate bool
}

// Win returns the result for a winning team.
func Win(team Team) GameResult {
	return GameResult{Winner: team}
}

// StalemateResult returns the drawn result.
func StalemateResult() GameResult {
	return GameResult{Stalemate: true}
}

// shieldKey identifies one tile of one team's shield ring.
type shieldKey struct {
	At   Position
	Team Team
}

// Game holds everything needed to replicate a state of the game
// deterministically: from a level and a list of turns, the exact same game
// must be reached.
type Game struct {
	levelPrototype Level
	level          Level
	turns          []Turn
	lastNominal    int
	availableTurns []Turn
	shielded       map[shieldKey]struct{}
	canStalemate   bool
}

// NewGame starts a game from a level. The level is cloned twice: once as the
// immutable rewind prototype and once as the working state.
func NewGame(level Level, canStalemate bool) (*Game, error) {
	if _, err := NewBoard(level.Board.Width, level.Board.Height); err != nil {
		return nil, err
	}

	g := &Game{
		levelPrototype: level.Clone(),
		level:          level.Clone(),
		canStalemate:   canStalemate,
	}

	g.availableTurns = g.generateAvailableTurns()
	g.shielded = g.generateShieldedPositions()

	return g, nil
}

// Clone deep-copies the game for search expansion.
func (g *Game) Clone() *Game {
	turns := make([]Turn, len(g.turns))
	copy(turns, g.turns)

	availableTurns := make([]Turn, len(g.availableTurns))
	copy(availableTurns, g.availableTurns)

	shielded := make(map[shieldKey]struct{}, len(g.shielded))
	for key := range g.shielded {
		shielded[key] = struct{}{}
	}

	return &Game{
		levelPrototype: g.levelPrototype.Clone(),
		level:          g.level.Clone(),
		turns:          turns,
		lastNominal:    g.lastNominal,
		availableTurns: availableTurns,
		shielded:       shielded,
		canStalemate:   g.canStalemate,
	}
}

// CanStalemate reports whether the stalemate counter is active.
func (g *Game) CanStalemate() bool {
	return g.canStalemate
}

// Stalemate reports whether the game has stalled, along with the number of
// non-damaging turns past the grace period.
func (g *Game) Stalemate() (bool, int) {
	if !g.canStalemate {
		return false, 0
	}

	grace := g.lastNominal
	if floor := len(g.level.Mages) * 3; floor > grace {
		grace = floor
	}

	gap := g.Turns() - grace
	if gap < 0 {
		gap = 0
	}

	return gap > 8, gap
}

// Result returns the game's outcome, or (zero, false) while play continues.
func (g *Game) Result() (GameResult, bool) {
	stalled, _ := g.Stalemate()
	if len(g.availableTurns) > 0 && !stalled {
		return GameResult{}, false
	}

	switch diff := g.ManaDifference(); {
	case diff < 0:
		return Win(TeamBlue), true
	case diff > 0:
		return Win(TeamRed), true
	default:
		return StalemateResult(), true
	}
}

// TurnsSince returns the turns made after the first since turns.
func (g *Game) TurnsSince(since int) []Turn {
	if since >= len(g.turns) {
		return nil
	}
	turns := make([]Turn, len(g.turns)-since)
	copy(turns, g.turns[since:])
	return turns
}

// LastTurn returns the latest turn, if any.
func (g *Game) LastTurn() (Turn, bool) {
	if len(g.turns) == 0 {
		return Turn{}, false
	}
	return g.turns[len(g.turns)-1], true
}

// Mages returns the game's mage roster.
func (g *Game) Mages() MageList {
	return g.level.Mages
}

// Mage returns the mage with the given index.
func (g *Game) Mage(index int) *Mage {
	if index < 0 || index >= len(g.level.Mages) {
		return nil
	}
	return &g.level.Mages[index]
}

// PowerUps returns the power-ups still on the ground.
func (g *Game) PowerUps() map[Position]PowerUp {
	return g.level.PowerUps
}

// Board returns the game's board.
func (g *Game) Board() Board {
	return g.level.Board
}

// Turns returns the number of turns taken since the start of the game.
func (g *Game) Turns() int {
	return len(g.turns)
}

func (g *Game) turnIndex() int {
	return g.Turns() % 2
}

// TurnFor returns the team taking the next turn.
func (g *Game) TurnFor() Team {
	team := TeamRed
	if g.turnIndex() != 0 {
		team = TeamBlue
	}

	if g.level.StartingTeam == TeamRed {
		return team
	}
	return team.Enemy()
}

// StartingTeam returns the team that made the first move.
func (g *Game) StartingTeam() Team {
	return g.level.StartingTeam
}

// Move is one legal step for a mage: the destination, the unit direction
// taken, and whether that direction is a diagonal.
type Move struct {
	Position  Position
	Direction Position
	Diagonal  bool
}

// moveDirections is the fixed probe order for move generation. Search relies
// on it: the first legal move doubles as the deterministic fallback turn.
var moveDirections = [8]struct {
	dir      Position
	diagonal bool
}{
	{Position{0, -1}, false},
	{Position{-1, 0}, false},
	{Position{1, 0}, false},
	{Position{0, 1}, false},
	{Position{-1, -1}, true},
	{Position{-1, 1}, true},
	{Position{1, -1}, true},
	{Position{1, 1}, true},
}

// AvailableMoves returns every tile the mage can step to. Diagonals require
// the diagonal power-up; occupied tiles, sleeping occupants included, and
// boulder tiles block.
func (g *Game) AvailableMoves(mage *Mage) []Move {
	moves := make([]Move, 0, len(moveDirections))

	for _, d := range moveDirections {
		position, ok := g.level.Board.ValidatePosition(mage.Position.Add(d.dir))
		if !ok {
			continue
		}
		if g.level.Mages.Occupied(position) {
			continue
		}
		if g.level.PowerUps[position] == PowerUpBoulder {
			continue
		}
		if d.diagonal && !mage.HasDiagonals() {
			continue
		}
		moves = append(moves, Move{Position: position, Direction: d.dir, Diagonal: d.diagonal})
	}

	return moves
}

// AvailableTurns returns every legal turn for the side to move. This is the
// cache regenerated after each accepted move; it is the source of truth for
// legality.
func (g *Game) AvailableTurns() []Turn {
	return g.availableTurns
}

func (g *Game) generateAvailableTurns() []Turn {
	turnFor := g.TurnFor()
	turns := []Turn{}

	for i := range g.level.Mages {
		mage := &g.level.Mages[i]
		if !mage.IsAlive() || mage.Team != turnFor {
			continue
		}
		for _, move := range g.AvailableMoves(mage) {
			turns = append(turns, Turn{From: mage.Position, To: move.Position})
		}
	}

	return turns
}

// ManaDifference evaluates the difference in total mana for both teams,
// positive in favour of red.
func (g *Game) ManaDifference() int {
	diff := 0
	for i := range g.level.Mages {
		if g.level.Mages[i].Team == TeamRed {
			diff += int(g.level.Mages[i].Mana.Current)
		} else {
			diff -= int(g.level.Mages[i].Mana.Current)
		}
	}
	return diff
}

// AliveMages returns the number of mages still awake.
func (g *Game) AliveMages() int {
	alive := 0
	for i := range g.level.Mages {
		if g.level.Mages[i].IsAlive() {
			alive++
		}
	}
	return alive
}

// TryMove reports whether the move would be accepted, without mutating the
// game.
func (g *Game) TryMove(from, to Position) bool {
	if _, over := g.Result(); over {
		return false
	}

	mage := g.level.Mages.LiveOccupant(from)
	if mage == nil || mage.Team != g.TurnFor() {
		return false
	}

	for _, move := range g.AvailableMoves(mage) {
		if move.Position == to {
			return true
		}
	}
	return false
}

// TakeMove executes a turn, mutating the game state. On success it returns
// the tiles that took damage (possibly none) and true; an illegal move
// returns false and leaves the game untouched.
func (g *Game) TakeMove(from, to Position) ([]Position, bool) {
	if !g.TryMove(from, to) {
		return nil, false
	}

	mage := g.level.Mages.LiveOccupant(from)
	mage.Position = to

	if powerup, lies := g.level.PowerUps[to]; lies {
		delete(g.level.PowerUps, to)
		mage.holdPowerUp(powerup)
	}

	hits := g.attack(to)
	if len(hits) > 0 {
		g.lastNominal = g.Turns()
	}

	g.turns = append(g.turns, Turn{From: from, To: to})

	g.availableTurns = g.generateAvailableTurns()
	g.shielded = g.generateShieldedPositions()

	return hits, true
}

// attack resolves the spell cast from the tile the active mage just moved
// to, damages every hit mage by one mana, and consumes a held beam.
func (g *Game) attack(at Position) []Position {
	hits := []Position{}

	if active := g.level.Mages.LiveOccupant(at); active != nil {
		for _, target := range g.targets(active, at) {
			if !target.Hit {
				continue
			}
			victim := g.level.Mages.LiveOccupant(target.Position)
			victim.Mana = victim.Mana.Sub(1)
			hits = append(hits, target.Position)
		}
	}

	if active := g.level.Mages.LiveOccupant(at); active != nil {
		if active.PowerUp != nil && *active.PowerUp == PowerUpBeam {
			active.PowerUp = nil
		}
	}

	return hits
}

// Target is one tile of an attack, with whether the attack connects there.
type Target struct {
	Hit      bool
	Position Position
}

// Targets returns the tiles the mage attacks from at, hits marked. Exposed
// for target previews.
func (g *Game) Targets(mage *Mage, at Position) []Target {
	return g.targets(mage, at)
}

func (g *Game) targets(mage *Mage, at Position) []Target {
	var targets []Target

	// A beam fires when the mage holds one, or when one lies unclaimed on
	// the attack tile (target-selection preview).
	beam := (mage.PowerUp != nil && *mage.PowerUp == PowerUpBeam) ||
		g.level.PowerUps[at] == PowerUpBeam

	if beam {
		targets = make([]Target, 0, g.level.Board.Width+g.level.Board.Height)
		for x := 0; x < g.level.Board.Width; x++ {
			position := Position{int8(x), at.Y}
			targets = append(targets, Target{
				Hit:      g.level.Mages.LiveOccupied(position) && position != mage.Position,
				Position: position,
			})
		}
		for y := 0; y < g.level.Board.Height; y++ {
			position := Position{at.X, int8(y)}
			targets = append(targets, Target{
				Hit:      g.level.Mages.LiveOccupied(position) && position != mage.Position,
				Position: position,
			})
		}
	} else {
		pattern := mage.Targets(g.level.Board, at)
		targets = make([]Target, 0, len(pattern)+1)
		for _, position := range pattern {
			targets = append(targets, Target{
				Hit: g.level.Mages.LiveOccupiedBy(position, mage.Team.Enemy()) &&
					!mage.IsDefensive(),
				Position: position,
			})
		}
	}

	// Stepping into an enemy shield ring reflects a hit back onto the
	// attacker.
	if _, reflected := g.shielded[shieldKey{At: at, Team: mage.Team.Enemy()}]; reflected {
		targets = append(targets, Target{Hit: true, Position: at})
	}

	return targets
}

// ShieldedPositions returns the tiles covered by each team's shield rings.
func (g *Game) ShieldedPositions() map[Position]Team {
	shielded := make(map[Position]Team, len(g.shielded))
	for key := range g.shielded {
		shielded[key.At] = key.Team
	}
	return shielded
}

func (g *Game) generateShieldedPositions() map[shieldKey]struct{} {
	shielded := map[shieldKey]struct{}{}

	for i := range g.level.Mages {
		mage := &g.level.Mages[i]
		if !mage.IsAlive() || !mage.IsDefensive() {
			continue
		}
		for _, position := range mage.Targets(g.level.Board, mage.Position) {
			shielded[shieldKey{At: position, Team: mage.Team}] = struct{}{}
		}
	}

	return shielded
}

// LocationAsPosition converts a canvas location to a board position.
func (g *Game) LocationAsPosition(x, y, offsetX, offsetY, scaleX, scaleY int) (Position, bool) {
	return g.level.Board.LocationAsPosition(x, y, offsetX, offsetY, scaleX, scaleY)
}

// Rewind returns the game as it was delta turns ago, by replaying the turn
// history from the level prototype.
func (g *Game) Rewind(delta int) *Game {
	rewound, _ := NewGame(g.levelPrototype, g.canStalemate)

	toward := g.Turns() - delta
	if toward < 0 {
		toward = 0
	}

	for _, turn := range g.turns[:min(toward, len(g.turns))] {
		rewound.TakeMove(turn.From, turn.To)
	}

	return rewound
}
