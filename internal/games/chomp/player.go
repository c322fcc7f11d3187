package chomp

import "github.com/mkravets/chomp-arcade/internal/core"

// fruitEatTile is where the active bonus fruit sits; the player eats it when
// the tile under the player's center-right offset matches.
var fruitEatTile = Point{14, 20}

// playerShouldMove is the player's move-eligibility predicate: movement is
// suppressed for one tick right after eating a dot and for three ticks
// after a pill, and otherwise skips every 8th tick. This cadence is what
// makes the player slightly faster than pursuing ghosts.
func (g *Game) playerShouldMove() bool {
	if g.dotEaten.Now(g.clock) {
		return false
	}
	if g.pillEaten.Since(g.clock) < 3 {
		return false
	}
	return g.clock.Ticks()%8 != 0
}

// inputDir maps the current input frame to a wanted direction, with the
// fixed priority up, down, right, left, falling back to the current
// direction when no direction is held.
func inputDir(in core.InputFrame, defaultDir Dir) Dir {
	switch {
	case in.Has(core.ActionUp):
		return DirUp
	case in.Has(core.ActionDown):
		return DirDown
	case in.Has(core.ActionRight):
		return DirRight
	case in.Has(core.ActionLeft):
		return DirLeft
	default:
		return defaultDir
	}
}

// updatePlayer moves the player one tick and resolves everything the new
// tile implies: dot and pill consumption, bonus fruit, ghost contact.
func (g *Game) updatePlayer(in core.InputFrame) {
	if !g.playerShouldMove() {
		return
	}

	// the player may corner: turning is allowed while off the centerline
	const allowCornering = true
	wantedDir := inputDir(in, g.player.Dir)
	if g.pf.canMove(g.player.Pos, wantedDir, allowCornering) {
		g.player.Dir = wantedDir
	}
	if g.pf.canMove(g.player.Pos, g.player.Dir, allowCornering) {
		g.player.Pos = move(g.player.Pos, g.player.Dir, allowCornering)
		g.player.AnimTick++
	}

	tilePos := pixelToTile(g.player.Pos)
	if g.pf.isDot(tilePos) {
		g.pf.setTile(tilePos, tileSpace)
		g.score++
		g.dotEaten.Start(g.clock)
		g.forceLeaveHouse.Start(g.clock)
		g.updateDotsEaten()
		g.updateGhostHouseDotCounters()
	}
	if g.pf.isPill(tilePos) {
		g.pf.setTile(tilePos, tileSpace)
		g.score += 5
		g.updateDotsEaten()
		g.pillEaten.Start(g.clock)
		g.numGhostsEaten = 0
		for i := range g.ghosts {
			g.ghosts[i].Frightened.Start(g.clock)
		}
		g.startSound(1, core.SoundFrightened)
	}

	// bonus fruit
	if g.activeFruit != FruitNone {
		testPos := pixelToTile(g.player.Pos.Add(Point{X: tileSize / 2}))
		if testPos == fruitEatTile {
			g.fruitEaten.Start(g.clock)
			spec := levelSpecFor(g.round)
			g.score += spec.bonusScore
			g.drawFruitScore(spec.bonusScore)
			g.activeFruit = FruitNone
			g.startSound(2, core.SoundEatFruit)
		}
	}

	// ghost contact is resolved on tile coincidence
	for i := range g.ghosts {
		ghost := &g.ghosts[i]
		if tilePos != pixelToTile(ghost.Pos) {
			continue
		}
		switch ghost.State {
		case GhostStateFrightened:
			// ghost eaten; bonus doubles for each ghost of one pill
			ghost.State = GhostStateEyes
			ghost.Eaten.Start(g.clock)
			g.ghostEaten.Start(g.clock)
			g.numGhostsEaten++
			g.score += 10 * (1 << g.numGhostsEaten)
			g.freeze |= freezeEatGhost
			g.startSound(2, core.SoundEatGhost)
		case GhostStateChase, GhostStateScatter:
			// caught: death sequence, then a new life or game over
			g.clearAllSounds()
			g.playerEaten.Start(g.clock)
			g.freeze |= freezeDead
			if g.lives > 0 {
				g.readyStarted.StartAfter(g.clock, playerEatenTicks+playerDeathTicks)
			} else {
				g.gameOver.StartAfter(g.clock, playerEatenTicks+playerDeathTicks)
			}
		}
	}
}

// updateDotsEaten advances the dot counter, checks the win condition and
// the two fruit-reveal thresholds, and plays the alternating crunch cue.
func (g *Game) updateDotsEaten() {
	g.numDotsEaten++
	switch {
	case g.numDotsEaten == numDots:
		g.roundWon.Start(g.clock)
		g.clearAllSounds()
	case g.numDotsEaten == 70 || g.numDotsEaten == 170:
		g.fruitActive.Start(g.clock)
	}

	if g.numDotsEaten&1 != 0 {
		g.startSound(2, core.SoundEatDotA)
	} else {
		g.startSound(2, core.SoundEatDotB)
	}
}
