package chomp

import (
	"testing"

	"github.com/mkravets/chomp-arcade/internal/core"
)

func pressAny() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	return in
}

// stepUntil advances the game with empty input until the condition holds.
func stepUntil(t *testing.T, g *Game, limit int, what string, cond func() bool) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if cond() {
			return
		}
		g.Step(core.InputFrame{})
	}
	if !cond() {
		t.Fatalf("%s did not happen within %d ticks: %s", what, limit, g.DebugState())
	}
}

// newPlayingGame starts a game and advances through the attract screen,
// the prelude and the READY! freeze, to the first live gameplay tick.
func newPlayingGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.DefaultConfig())
	g.Step(core.InputFrame{}) // attract screen comes up, input enables
	g.Step(pressAny())
	stepUntil(t, g, 600, "gameplay start", func() bool {
		return g.mode == modeGame && g.freeze == 0
	})
	return g
}

func TestPlayerEatsDotAndPill(t *testing.T) {
	g := newPlayingGame(t)

	// The player starts centered on an empty tile moving left; the first
	// dot on its path is two tiles over.
	score0 := g.score
	var dotSound core.SoundEvent
	for i := 0; i < 50 && g.score == score0; i++ {
		res := g.Step(core.InputFrame{})
		for _, s := range res.Sounds {
			if s.Effect == core.SoundEatDotA || s.Effect == core.SoundEatDotB {
				dotSound = s
			}
		}
	}
	if g.score != score0+1 {
		t.Fatalf("score = %d after first dot, expected %d", g.score, score0+1)
	}
	if g.numDotsEaten != 1 {
		t.Errorf("dots eaten = %d, expected 1", g.numDotsEaten)
	}
	if dotSound.Effect != core.SoundEatDotA {
		t.Errorf("first dot cue = %v, expected the A crunch", dotSound.Effect)
	}

	// plant a pill on the path and keep walking
	g.pf.setTile(Point{11, 26}, tilePill)
	score1 := g.score
	stepUntil(t, g, 100, "pill consumption", func() bool {
		return g.score > score1
	})
	if g.score != score1+5 {
		t.Errorf("score = %d after the pill, expected %d", g.score, score1+5)
	}
	if g.numGhostsEaten != 0 {
		t.Errorf("ghost-eat chain = %d after a pill, expected reset to 0", g.numGhostsEaten)
	}
	for i := range g.ghosts {
		if g.ghosts[i].Frightened.Disabled() {
			t.Errorf("%v was not frightened by the pill", g.ghosts[i].Kind)
		}
	}
	// a ghost outside the house turns frightened on its next update
	g.Step(core.InputFrame{})
	if got := g.ghosts[GhostBlinky].State; got != GhostStateFrightened {
		t.Errorf("Blinky state = %v after a pill, expected Frightened", got)
	}
}

func TestPlayerMoveCadence(t *testing.T) {
	g := newPlayingGame(t)

	// clear the dots on the row so eating pauses don't interfere
	for x := 1; x <= 13; x++ {
		g.pf.setTile(Point{x, 26}, tileSpace)
	}

	startX := g.player.Pos.X
	moved := 0
	for i := 0; i < 16; i++ {
		next := g.clock.Ticks() + 1
		if next%8 != 0 {
			moved++
		}
		g.Step(core.InputFrame{})
	}
	if got := startX - g.player.Pos.X; got != moved {
		t.Errorf("player advanced %d px over 16 ticks, expected %d (skips every 8th tick)", got, moved)
	}
}

func TestDotEatingPausesPlayer(t *testing.T) {
	g := newPlayingGame(t)

	// walk to the first dot
	score0 := g.score
	stepUntil(t, g, 50, "first dot", func() bool { return g.score > score0 })

	// the tick right after a dot is a forced stand-still
	pos := g.player.Pos
	g.Step(core.InputFrame{})
	if g.player.Pos != pos {
		t.Errorf("player moved to %+v on the tick after eating a dot", g.player.Pos)
	}
}

func TestFruitAppearsAtDotThresholds(t *testing.T) {
	g := newPlayingGame(t)

	g.numDotsEaten = 69
	score0 := g.score
	stepUntil(t, g, 50, "70th dot", func() bool { return g.score > score0 })
	if g.numDotsEaten != 70 {
		t.Fatalf("dots eaten = %d, expected 70", g.numDotsEaten)
	}
	// the activation trigger fires on the following tick
	g.Step(core.InputFrame{})
	if g.activeFruit != FruitCherries {
		t.Errorf("active fruit = %v at 70 dots in round 0, expected Cherries", g.activeFruit)
	}
}

func TestEatingFruitScoresWithoutFrightening(t *testing.T) {
	g := newPlayingGame(t)

	g.activeFruit = FruitCherries
	// park the player one pixel short of the fruit-eat sensor tile
	g.player.Pos = Point{fruitEatTile.X*tileSize - tileSize/2 - 1, fruitEatTile.Y*tileSize + tileSize/2}
	g.player.Dir = DirRight

	score0 := g.score
	stepUntil(t, g, 10, "fruit pickup", func() bool { return g.activeFruit == FruitNone })
	if g.score != score0+levelSpecFor(0).bonusScore {
		t.Errorf("score = %d after the fruit, expected %d", g.score, score0+levelSpecFor(0).bonusScore)
	}
	for i := range g.ghosts {
		if !g.ghosts[i].Frightened.Disabled() {
			t.Errorf("%v frightened by a fruit; only pills frighten", g.ghosts[i].Kind)
		}
	}
}

func TestEatingFrightenedGhost(t *testing.T) {
	g := newPlayingGame(t)

	blinky := &g.ghosts[GhostBlinky]
	blinky.State = GhostStateFrightened
	blinky.Frightened.Start(g.clock)
	blinky.Pos = Point{108, 212} // one tile ahead of the player

	score0 := g.score
	stepUntil(t, g, 20, "ghost capture", func() bool {
		return blinky.State == GhostStateEyes
	})
	if g.numGhostsEaten != 1 {
		t.Errorf("ghosts eaten = %d, expected 1", g.numGhostsEaten)
	}
	if g.score != score0+20 {
		t.Errorf("score = %d, expected +20 for the first ghost of a pill", g.score)
	}
	if g.freeze&freezeEatGhost == 0 {
		t.Error("eat-ghost freeze not set")
	}
	if blinky.Eaten.Disabled() {
		t.Error("per-ghost eaten trigger not armed")
	}

	// the freeze lifts after the score popup interval
	stepUntil(t, g, ghostEatenFreezeTicks+5, "freeze release", func() bool {
		return g.freeze&freezeEatGhost == 0
	})
}

func TestGhostContactCostsALife(t *testing.T) {
	g := newPlayingGame(t)
	lives0 := g.lives

	blinky := &g.ghosts[GhostBlinky]
	blinky.State = GhostStateScatter
	blinky.Pos = Point{102, 212}
	blinky.Dir = DirRight
	blinky.NextDir = DirRight

	stepUntil(t, g, 30, "fatal contact", func() bool {
		return g.freeze&freezeDead != 0
	})
	if g.lives != lives0 {
		t.Errorf("lives = %d during the death sequence, expected unchanged %d", g.lives, lives0)
	}

	// the respawn flows through roundInit: one life gone, global dot
	// counter active, playfield dots preserved
	stepUntil(t, g, playerEatenTicks+playerDeathTicks+20, "respawn", func() bool {
		return g.freeze&freezeReady != 0
	})
	if g.lives != lives0-1 {
		t.Errorf("lives = %d after respawn, expected %d", g.lives, lives0-1)
	}
	if !g.globalDotCounterActive {
		t.Error("global dot counter inactive after a lost life")
	}
	if g.player.Pos != playerStart.pos {
		t.Errorf("player respawned at %+v, expected %+v", g.player.Pos, playerStart.pos)
	}
}

func TestRoundWonOnLastDot(t *testing.T) {
	g := newPlayingGame(t)
	round0 := g.round

	g.numDotsEaten = numDots - 1
	score0 := g.score
	stepUntil(t, g, 50, "final dot", func() bool { return g.score > score0 })
	if g.numDotsEaten != numDots {
		t.Fatalf("dots eaten = %d, expected %d", g.numDotsEaten, numDots)
	}

	g.Step(core.InputFrame{})
	if g.freeze&freezeWon == 0 {
		t.Fatal("won freeze not set on the tick after the last dot")
	}

	// the next round comes up on a fresh maze
	stepUntil(t, g, roundWonTicks+20, "next round init", func() bool {
		return g.round == round0+1
	})
	if g.numDotsEaten != 0 {
		t.Errorf("dots eaten = %d in the new round, expected 0", g.numDotsEaten)
	}
	var pf playfield
	pf.initMaze()
	dots := 0
	for y := 0; y < displayTilesY; y++ {
		for x := 0; x < displayTilesX; x++ {
			if g.pf.tiles[y][x] == tileDot || g.pf.tiles[y][x] == tilePill {
				dots++
			}
		}
	}
	if dots != numDots {
		t.Errorf("fresh round has %d dots, expected %d", dots, numDots)
	}
}
