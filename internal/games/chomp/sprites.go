package chomp

// Sprite slots follow the hardware layout: one player, four ghosts, one
// bonus fruit. Slot indices are fixed.
const (
	spritePlayer = 0
	spriteBlinky = 1
	spritePinky  = 2
	spriteInky   = 3
	spriteClyde  = 4
	spriteFruit  = 5
	numSprites   = 6
)

const (
	spriteSize = 16 // sprites are 16x16 pixels, two tiles square
)

// Sprite tile indices referenced by the animation programs.
const (
	spriteTileInvisible   = 30
	spriteTileScore200    = 40
	spriteTileClosedMouth = 48
)

// Sprite is one hardware-style sprite descriptor, updated once per tick
// and consumed by the renderer.
type Sprite struct {
	Enabled      bool
	Tile         uint8
	Color        uint8
	FlipX, FlipY bool
	Pos          Point // top-left corner, pixels
}

// actorToSpritePos converts an actor position (tile-center origin) to a
// sprite position (top-left origin).
func actorToSpritePos(pos Point) Point {
	return Point{X: pos.X - spriteSize/2, Y: pos.Y - spriteSize/2}
}

func (g *Game) clearSprites() {
	for i := range g.sprites {
		g.sprites[i] = Sprite{}
	}
}

// animPlayer sets the player sprite to the munching animation.
func (g *Game) animPlayer(dir Dir, tick uint32) {
	// animation frames for horizontal and vertical movement
	tiles := [2][4]uint8{
		{44, 46, 48, 46}, // horizontal (flipped for left)
		{45, 47, 48, 47}, // vertical (flipped for up)
	}
	spr := &g.sprites[spritePlayer]
	phase := (tick / 2) & 3
	spr.Tile = tiles[dir&1][phase]
	spr.Color = colorPlayer
	spr.FlipX = dir == DirLeft
	spr.FlipY = dir == DirUp
}

// animPlayerDeath sets the player sprite to the death sequence frame for
// the given ticks since the sequence began.
func (g *Game) animPlayerDeath(tick uint32) {
	// the sequence runs from sprite tile 52 to 63 and holds the last frame
	spr := &g.sprites[spritePlayer]
	tile := 52 + tick/8
	if tile > 63 {
		tile = 63
	}
	spr.Tile = uint8(tile)
	spr.FlipX = false
	spr.FlipY = false
}

// animGhost sets a ghost sprite to the regular body animation, facing the
// ghost's lookahead direction.
func (g *Game) animGhost(slot int, kind GhostKind, dir Dir, tick uint32) {
	tiles := [numDirs][2]uint8{
		{32, 33}, // right
		{34, 35}, // down
		{36, 37}, // left
		{38, 39}, // up
	}
	phase := (tick / 8) & 1
	spr := &g.sprites[slot]
	spr.Tile = tiles[dir][phase]
	spr.Color = colorBlinky + 2*uint8(kind)
	spr.FlipX = false
	spr.FlipY = false
}

// animGhostFrightened sets a ghost sprite to the frightened appearance,
// blinking white during the last second of the frightened window.
func (g *Game) animGhostFrightened(slot int, tick uint32) {
	tiles := [2]uint8{28, 29}
	phase := (tick / 4) & 1
	spr := &g.sprites[slot]
	spr.Tile = tiles[phase]
	if tick > levelSpecFor(g.round).frightenedTicks-60 {
		if tick&0x10 != 0 {
			spr.Color = colorFrightened
		} else {
			spr.Color = colorFrightenedBlinking
		}
	} else {
		spr.Color = colorFrightened
	}
	spr.FlipX = false
	spr.FlipY = false
}

// animGhostEyes shows only the ghost's eyes (the body tiles with the eyes
// palette), used while returning to the house.
func (g *Game) animGhostEyes(slot int, dir Dir) {
	tiles := [numDirs]uint8{32, 34, 36, 38}
	spr := &g.sprites[slot]
	spr.Tile = tiles[dir]
	spr.Color = colorEyes
	spr.FlipX = false
	spr.FlipY = false
}

// updateSprites refreshes all six sprite descriptors from the game state.
// Runs every tick, frozen or not, so freeze-time feedback (score tiles,
// death animation, hidden ghosts) stays visible.
func (g *Game) updateSprites() {
	if spr := &g.sprites[spritePlayer]; spr.Enabled {
		spr.Pos = actorToSpritePos(g.player.Pos)
		switch {
		case g.freeze&freezeEatGhost != 0:
			// hide the player briefly after eating a ghost
			spr.Tile = spriteTileInvisible
		case g.freeze&(freezePrelude|freezeReady) != 0:
			// frozen at round start: closed mouth
			spr.Tile = spriteTileClosedMouth
		case g.freeze&freezeDead != 0:
			// death animation starts after a short pause
			if g.playerEaten.After(g.clock, playerEatenTicks) {
				g.animPlayerDeath(g.playerEaten.Since(g.clock) - playerEatenTicks)
			}
		default:
			g.animPlayer(g.player.Dir, g.player.AnimTick)
		}
	}

	for i := range g.ghosts {
		slot := spriteBlinky + i
		spr := &g.sprites[slot]
		if !spr.Enabled {
			continue
		}
		ghost := &g.ghosts[i]
		spr.Pos = actorToSpritePos(ghost.Pos)
		switch {
		case g.freeze&freezeDead != 0:
			// hide ghosts once the death animation begins
			if g.playerEaten.After(g.clock, playerEatenTicks) {
				spr.Tile = spriteTileInvisible
			}
		case g.freeze&freezeWon != 0:
			spr.Tile = spriteTileInvisible
		default:
			switch ghost.State {
			case GhostStateEyes:
				if ghost.Eaten.Before(g.clock, ghostEatenFreezeTicks) {
					// a just-eaten ghost shows its score value for a moment
					spr.Tile = spriteTileScore200 + uint8(g.numGhostsEaten) - 1
					spr.Color = colorGhostScore
				} else {
					g.animGhostEyes(slot, ghost.NextDir)
				}
			case GhostStateEnterHouse:
				g.animGhostEyes(slot, ghost.Dir)
			case GhostStateFrightened:
				g.animGhostFrightened(slot, ghost.Frightened.Since(g.clock))
			default:
				// next_dir makes ghosts look where they will turn one
				// tile ahead
				g.animGhost(slot, ghost.Kind, ghost.NextDir, ghost.AnimTick)
			}
		}
	}

	// the bonus fruit sprite tracks the active fruit
	if g.activeFruit == FruitNone {
		g.sprites[spriteFruit].Enabled = false
	} else {
		spr := &g.sprites[spriteFruit]
		spr.Enabled = true
		spr.Pos = actorToSpritePos(Point{X: 14 * tileSize, Y: 20*tileSize + tileSize/2})
		spr.Tile = fruitTiles[g.activeFruit].tile
		spr.Color = fruitTiles[g.activeFruit].color
	}
}
