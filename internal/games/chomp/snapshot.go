package chomp

import "fmt"

// GhostSnapshot captures one ghost's state for determinism testing.
type GhostSnapshot struct {
	Kind       GhostKind
	State      GhostState
	Dir        Dir
	NextDir    Dir
	PosX, PosY int
	TargetX    int
	TargetY    int
	DotCounter int
}

// Snapshot captures the complete observable game state for determinism
// testing and replay verification.
type Snapshot struct {
	Tick           uint32
	Mode           string // "intro" or "game"
	Round          int
	Score          uint32
	HiScore        uint32
	Lives          int
	DotsEaten      int
	GhostsEaten    int
	GlobalCounter  int
	GlobalActive   bool
	Freeze         uint8
	ActiveFruit    Fruit
	PlayerX        int
	PlayerY        int
	PlayerDir      Dir
	PlayerAnimTick uint32
	Ghosts         [numGhosts]GhostSnapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	mode := "intro"
	if g.mode == modeGame {
		mode = "game"
	}
	s := Snapshot{
		Tick:           g.clock.Ticks(),
		Mode:           mode,
		Round:          g.round,
		Score:          g.score,
		HiScore:        g.hiscore,
		Lives:          g.lives,
		DotsEaten:      g.numDotsEaten,
		GhostsEaten:    g.numGhostsEaten,
		GlobalCounter:  g.globalDotCounter,
		GlobalActive:   g.globalDotCounterActive,
		Freeze:         uint8(g.freeze),
		ActiveFruit:    g.activeFruit,
		PlayerX:        g.player.Pos.X,
		PlayerY:        g.player.Pos.Y,
		PlayerDir:      g.player.Dir,
		PlayerAnimTick: g.player.AnimTick,
	}
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		s.Ghosts[i] = GhostSnapshot{
			Kind:       gh.Kind,
			State:      gh.State,
			Dir:        gh.Dir,
			NextDir:    gh.NextDir,
			PosX:       gh.Pos.X,
			PosY:       gh.Pos.Y,
			TargetX:    gh.Target.X,
			TargetY:    gh.Target.Y,
			DotCounter: gh.DotCounter,
		}
	}
	return s
}

// DebugState returns a compact single-line summary, useful in test
// failure messages.
func (g *Game) DebugState() string {
	return fmt.Sprintf("tick=%d mode=%d round=%d score=%d lives=%d dots=%d freeze=%02x player=(%d,%d,%s)",
		g.clock.Ticks(), g.mode, g.round, g.score, g.lives, g.numDotsEaten,
		uint8(g.freeze), g.player.Pos.X, g.player.Pos.Y, g.player.Dir)
}
