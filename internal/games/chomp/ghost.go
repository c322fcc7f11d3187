package chomp

// The ghost AI is split into three functions evaluated in a fixed order
// once per ghost per tick: state transition, target selection, direction
// selection. Direction selection runs once per pixel step, so fast ghosts
// (eyes) re-evaluate mid-tick.

// ghostSpeed returns how many pixels the ghost moves this tick. Ghosts in
// or around the house and frightened ghosts move at half speed; eyes move
// at an average 1.5 px/tick; in chase/scatter the cadence is slightly
// below player speed, and drastically slower inside the tunnels.
func (g *Game) ghostSpeed(ghost *Ghost) int {
	tick := g.clock.Ticks()
	switch ghost.State {
	case GhostStateHouse, GhostStateLeaveHouse, GhostStateFrightened:
		return int(tick & 1)
	case GhostStateEyes, GhostStateEnterHouse:
		if tick&1 != 0 {
			return 1
		}
		return 2
	default:
		if isTunnel(pixelToTile(ghost.Pos)) {
			if (tick*2)%4 != 0 {
				return 1
			}
			return 0
		}
		if tick%7 != 0 {
			return 1
		}
		return 0
	}
}

// scatterChasePhase returns the global scatter or chase mode from the
// elapsed round time: seven alternating windows, then chase forever.
func (g *Game) scatterChasePhase() GhostState {
	t := g.roundStarted.Since(g.clock)
	switch {
	case t < 7*60:
		return GhostStateScatter
	case t < 27*60:
		return GhostStateChase
	case t < 34*60:
		return GhostStateScatter
	case t < 54*60:
		return GhostStateChase
	case t < 59*60:
		return GhostStateScatter
	case t < 79*60:
		return GhostStateChase
	case t < 84*60:
		return GhostStateScatter
	default:
		return GhostStateChase
	}
}

// updateGhostState advances the ghost FSM by at most one transition.
func (g *Game) updateGhostState(ghost *Ghost) {
	newState := ghost.State
	switch ghost.State {
	case GhostStateEyes:
		// Eyes move faster than one pixel per tick, so the arrival check
		// at the spot in front of the house door is fuzzy.
		if ghost.Pos.NearEqual(Point{antePortasX, antePortasY}, 1) {
			newState = GhostStateEnterHouse
		}
	case GhostStateEnterHouse:
		// A ghost entering the house mid-round leaves again immediately
		// after reaching its interior slot.
		if ghost.Pos.NearEqual(ghostSpecs[ghost.Kind].houseTarget, 1) {
			newState = GhostStateLeaveHouse
		}
	case GhostStateHouse:
		if g.forceLeaveHouse.AfterOnce(g.clock, 4*60) {
			// no dots eaten for 4 seconds forces the next ghost out
			newState = GhostStateLeaveHouse
			g.forceLeaveHouse.Start(g.clock)
		} else if g.globalDotCounterActive {
			// after a lost life the global dot counter gates house exit
			switch {
			case ghost.Kind == GhostPinky && g.globalDotCounter == 7:
				newState = GhostStateLeaveHouse
			case ghost.Kind == GhostInky && g.globalDotCounter == 17:
				newState = GhostStateLeaveHouse
			case ghost.Kind == GhostClyde && g.globalDotCounter == 32:
				newState = GhostStateLeaveHouse
				// the global counter deactivates if and only if Clyde is
				// in the house when it reaches 32
				g.globalDotCounterActive = false
			}
		} else if ghost.DotCounter == ghost.DotLimit {
			newState = GhostStateLeaveHouse
		}
	case GhostStateLeaveHouse:
		// ghosts switch to scatter the moment they clear the door
		if ghost.Pos.Y == antePortasY {
			newState = GhostStateScatter
		}
	default:
		// switch between frightened and the global scatter/chase phase
		if ghost.Frightened.Before(g.clock, levelSpecFor(g.round).frightenedTicks) {
			newState = GhostStateFrightened
		} else {
			newState = g.scatterChasePhase()
		}
	}

	if newState == ghost.State {
		return
	}
	switch ghost.State {
	case GhostStateLeaveHouse:
		// after leaving the house, head left
		ghost.NextDir = DirLeft
		ghost.Dir = DirLeft
	case GhostStateEnterHouse:
		// an eaten ghost is immune to frighten until the next pill
		ghost.Frightened.Disable()
	case GhostStateFrightened:
		// no direction reversal when frightened wears off
	case GhostStateScatter, GhostStateChase:
		// any transition out of scatter or chase reverses direction
		ghost.NextDir = ghost.Dir.Reverse()
	}
	ghost.State = newState
}

// updateGhostTarget recomputes the ghost's target tile from its state.
func (g *Game) updateGhostTarget(ghost *Ghost) {
	pos := ghost.Target
	switch ghost.State {
	case GhostStateScatter:
		pos = ghostSpecs[ghost.Kind].scatterTarget
	case GhostStateChase:
		playerTile := pixelToTile(g.player.Pos)
		playerDir := g.player.Dir.Vector()
		switch ghost.Kind {
		case GhostBlinky:
			// direct pursuit
			pos = playerTile
		case GhostPinky:
			// four tiles ahead of the player
			pos = playerTile.Add(playerDir.Mul(4))
		case GhostInky:
			// extrapolate along the line from Blinky through the point
			// two tiles ahead of the player
			blinkyTile := pixelToTile(g.ghosts[GhostBlinky].Pos)
			p := playerTile.Add(playerDir.Mul(2))
			pos = blinkyTile.Add(p.Sub(blinkyTile).Mul(2))
		case GhostClyde:
			// chase when far, retreat to the scatter corner when close
			if pixelToTile(ghost.Pos).SquaredDist(playerTile) > 64 {
				pos = playerTile
			} else {
				pos = ghostSpecs[GhostClyde].scatterTarget
			}
		}
	case GhostStateFrightened:
		// a random target tile makes frightened ghosts pick effectively
		// random turns at each intersection
		pos = Point{
			X: int(g.rng.next() % displayTilesX),
			Y: int(g.rng.next() % displayTilesY),
		}
	case GhostStateEyes:
		// head for the house door
		pos = Point{13, 14}
	}
	ghost.Target = pos
}

// updateGhostDir computes the ghost's next movement direction. It returns
// true when the resulting movement must happen unconditionally, which is
// how the house-internal states bypass blocking-tile checks.
func (g *Game) updateGhostDir(ghost *Ghost) bool {
	switch ghost.State {
	case GhostStateHouse:
		// bounce up and down inside the house
		if ghost.Pos.Y <= 17*tileSize {
			ghost.NextDir = DirDown
		} else if ghost.Pos.Y >= 18*tileSize {
			ghost.NextDir = DirUp
		}
		ghost.Dir = ghost.NextDir
		return true

	case GhostStateLeaveHouse:
		pos := ghost.Pos
		if pos.X == antePortasX {
			if pos.Y > antePortasY {
				ghost.NextDir = DirUp
			}
		} else {
			midY := 17*tileSize + tileSize/2
			switch {
			case pos.Y > midY:
				ghost.NextDir = DirUp
			case pos.Y < midY:
				ghost.NextDir = DirDown
			case pos.X > antePortasX:
				ghost.NextDir = DirLeft
			default:
				ghost.NextDir = DirRight
			}
		}
		ghost.Dir = ghost.NextDir
		return true

	case GhostStateEnterHouse:
		pos := ghost.Pos
		tilePos := pixelToTile(pos)
		tgt := ghostSpecs[ghost.Kind].houseTarget
		if tilePos.Y == 14 {
			if pos.X != antePortasX {
				if pos.X < antePortasX {
					ghost.NextDir = DirRight
				} else {
					ghost.NextDir = DirLeft
				}
			} else {
				ghost.NextDir = DirDown
			}
		} else if pos.Y == tgt.Y {
			if pos.X < tgt.X {
				ghost.NextDir = DirRight
			} else {
				ghost.NextDir = DirLeft
			}
		}
		ghost.Dir = ghost.NextDir
		return true

	default:
		// scatter/chase/frightened/eyes: head toward the target tile.
		// A new direction is only computed at an exact tile midpoint.
		distMid := distToTileMid(ghost.Pos)
		if distMid.X == 0 && distMid.Y == 0 {
			// commit the previously computed lookahead direction
			ghost.Dir = ghost.NextDir

			lookahead := pixelToTile(ghost.Pos).Add(ghost.Dir.Vector())

			// among the non-reversing, non-blocked candidates, pick the
			// one closest to the target; iteration order is the tie-break
			candidates := [numDirs]Dir{DirUp, DirLeft, DirDown, DirRight}
			minDist := 100000
			for _, dir := range candidates {
				// upward turns are forbidden inside the red zones,
				// except for eyes
				if isRedZone(lookahead) && dir == DirUp && ghost.State != GhostStateEyes {
					continue
				}
				if dir.Reverse() == ghost.Dir {
					continue
				}
				testPos := clampedTilePos(lookahead.Add(dir.Vector()))
				if g.pf.isBlocking(testPos) {
					continue
				}
				if dist := testPos.SquaredDist(ghost.Target); dist < minDist {
					minDist = dist
					ghost.NextDir = dir
				}
			}
		}
		return false
	}
}

// updateGhost runs one full AI tick for a ghost: state transition, target
// update, then as many pixel steps as the speed model grants, with the
// direction rule re-run before every step.
func (g *Game) updateGhost(ghost *Ghost) {
	g.updateGhostState(ghost)
	g.updateGhostTarget(ghost)

	numMoveTicks := g.ghostSpeed(ghost)
	for i := 0; i < numMoveTicks; i++ {
		forceMove := g.updateGhostDir(ghost)
		const allowCornering = false
		if forceMove || g.pf.canMove(ghost.Pos, ghost.Dir, allowCornering) {
			ghost.Pos = move(ghost.Pos, ghost.Dir, allowCornering)
			ghost.AnimTick++
		}
	}
}

// updateGhostHouseDotCounters advances the house-exit gating counters.
// Called once per dot or pill eaten. With the global counter active (after
// a lost life) only it advances; otherwise the highest-priority ghost
// still below its personal limit counts.
func (g *Game) updateGhostHouseDotCounters() {
	if g.globalDotCounterActive {
		g.globalDotCounter++
		return
	}
	for i := range g.ghosts {
		if g.ghosts[i].DotCounter < g.ghosts[i].DotLimit {
			g.ghosts[i].DotCounter++
			break
		}
	}
}
