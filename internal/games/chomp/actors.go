package chomp

const numGhosts = 4

// Actor is the shared movable-entity state: a facing/movement direction, a
// pixel position (tile-center convention) and an animation counter that only
// advances when the actor actually moved.
type Actor struct {
	Dir      Dir
	Pos      Point
	AnimTick uint32
}

// GhostKind is a fixed adversary identity. Each kind has its own chase
// strategy, scatter corner, house slot and dot limit.
type GhostKind uint8

const (
	GhostBlinky GhostKind = iota
	GhostPinky
	GhostInky
	GhostClyde
)

// String returns the ghost's display name.
func (k GhostKind) String() string {
	switch k {
	case GhostBlinky:
		return "Blinky"
	case GhostPinky:
		return "Pinky"
	case GhostInky:
		return "Inky"
	case GhostClyde:
		return "Clyde"
	default:
		return "Unknown"
	}
}

// GhostState is the adversary FSM state.
type GhostState uint8

const (
	// GhostStateNone is the pre-init placeholder, never a runtime state.
	GhostStateNone GhostState = iota
	GhostStateChase
	GhostStateScatter
	GhostStateFrightened
	GhostStateEyes
	GhostStateHouse
	GhostStateLeaveHouse
	GhostStateEnterHouse
)

// String returns a human-readable state name.
func (s GhostState) String() string {
	switch s {
	case GhostStateNone:
		return "None"
	case GhostStateChase:
		return "Chase"
	case GhostStateScatter:
		return "Scatter"
	case GhostStateFrightened:
		return "Frightened"
	case GhostStateEyes:
		return "Eyes"
	case GhostStateHouse:
		return "House"
	case GhostStateLeaveHouse:
		return "LeaveHouse"
	case GhostStateEnterHouse:
		return "EnterHouse"
	default:
		return "Unknown"
	}
}

// Ghost extends Actor with the pursuit AI state: the lookahead direction
// chosen one tile in advance, the current target tile, the frightened and
// eaten triggers, and the personal house-exit dot counter.
type Ghost struct {
	Actor
	Kind       GhostKind
	NextDir    Dir
	Target     Point
	State      GhostState
	Frightened Trigger
	Eaten      Trigger
	DotCounter int
	DotLimit   int
}

// Fixed per-kind layout: start position/direction, the slot inside the
// house that eyes return to, the scatter corner, and the personal dot
// limit gating house exit. Values are pixel or tile coordinates as named.
var ghostSpecs = [numGhosts]struct {
	startPos      Point
	startDir      Dir
	startState    GhostState
	houseTarget   Point
	scatterTarget Point
	dotLimit      int
}{
	GhostBlinky: {
		startPos:      Point{X: 14 * tileSize, Y: 14*tileSize + tileSize/2},
		startDir:      DirLeft,
		startState:    GhostStateScatter,
		houseTarget:   Point{X: 14 * tileSize, Y: 17*tileSize + tileSize/2},
		scatterTarget: Point{X: 25, Y: 0},
		dotLimit:      0,
	},
	GhostPinky: {
		startPos:      Point{X: 14 * tileSize, Y: 17*tileSize + tileSize/2},
		startDir:      DirDown,
		startState:    GhostStateHouse,
		houseTarget:   Point{X: 14 * tileSize, Y: 17*tileSize + tileSize/2},
		scatterTarget: Point{X: 2, Y: 0},
		dotLimit:      0,
	},
	GhostInky: {
		startPos:      Point{X: 12 * tileSize, Y: 17*tileSize + tileSize/2},
		startDir:      DirUp,
		startState:    GhostStateHouse,
		houseTarget:   Point{X: 12 * tileSize, Y: 17*tileSize + tileSize/2},
		scatterTarget: Point{X: 27, Y: 34},
		dotLimit:      30,
	},
	GhostClyde: {
		startPos:      Point{X: 16 * tileSize, Y: 17*tileSize + tileSize/2},
		startDir:      DirUp,
		startState:    GhostStateHouse,
		houseTarget:   Point{X: 16 * tileSize, Y: 17*tileSize + tileSize/2},
		scatterTarget: Point{X: 0, Y: 34},
		dotLimit:      60,
	},
}

// playerStart is the player's round-init position and direction.
var playerStart = struct {
	pos Point
	dir Dir
}{
	pos: Point{X: 14 * tileSize, Y: 26*tileSize + tileSize/2},
	dir: DirLeft,
}

// resetGhost restores a ghost to its round-init state.
func resetGhost(g *Ghost, kind GhostKind) {
	spec := ghostSpecs[kind]
	*g = Ghost{
		Actor: Actor{
			Dir: spec.startDir,
			Pos: spec.startPos,
		},
		Kind:       kind,
		NextDir:    spec.startDir,
		State:      spec.startState,
		Frightened: NewTrigger(),
		Eaten:      NewTrigger(),
		DotLimit:   spec.dotLimit,
	}
}
