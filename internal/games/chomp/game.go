// Package chomp implements a deterministic arcade maze-chase game: one
// player and four pursuing ghosts on a 28x36 tile playfield, advanced at a
// fixed 60 Hz logic tick. The simulation is pure; rendering, audio and
// input mapping live in the platform layer.
package chomp

import (
	"fmt"

	"github.com/mkravets/chomp-arcade/internal/core"
	"github.com/mkravets/chomp-arcade/internal/registry"
)

// freezeFlags is a bitmask of independent reasons to suspend actor and AI
// updates. Tile and sprite bookkeeping still runs while frozen, so blink
// effects and death animations stay live.
type freezeFlags uint8

const (
	freezePrelude freezeFlags = 1 << iota
	freezeReady
	freezeEatGhost
	freezeDead
	freezeWon
)

// Gameplay timing constants, in 60 Hz ticks.
const (
	numLives = 6

	ghostEatenFreezeTicks = 60
	playerEatenTicks      = 60
	playerDeathTicks      = 150
	gameOverTicks         = 180
	roundWonTicks         = 240
	fruitActiveTicks      = 600
	fadeTicks             = 30
)

// gameMode selects between the attract screen and the gameplay loop.
type gameMode uint8

const (
	modeIntro gameMode = iota
	modeGame
)

// Game is the complete simulation state for one session. Everything is
// owned by the instance; two games stepped with the same inputs stay in
// lockstep.
type Game struct {
	screenW int
	screenH int
	paused  bool

	clock Clock
	mode  gameMode

	// attract screen
	introStarted Trigger

	// screen fades
	fadeIn  Trigger
	fadeOut Trigger

	// round/session lifecycle triggers
	started         Trigger
	readyStarted    Trigger
	roundStarted    Trigger
	roundWon        Trigger
	gameOver        Trigger
	dotEaten        Trigger
	pillEaten       Trigger
	ghostEaten      Trigger
	playerEaten     Trigger
	fruitEaten      Trigger
	forceLeaveHouse Trigger
	fruitActive     Trigger

	freeze                 freezeFlags
	round                  int
	score                  uint32 // internal units, displayed x10
	hiscore                uint32
	lives                  int
	numGhostsEaten         int
	numDotsEaten           int
	globalDotCounter       int
	globalDotCounterActive bool
	activeFruit            Fruit
	rng                    xorshift32
	roundSeed              uint32
	inputEnabled           bool

	player  Actor
	ghosts  [numGhosts]Ghost
	sprites [numSprites]Sprite
	pf      playfield

	pendingSounds []core.SoundEvent
}

// Package-level configuration hooks, set by the CLI/config layer before
// the game is created.
var (
	startRound      int
	configuredLives = numLives
)

// SetStartRound sets the 0-based round the next game starts at.
func SetStartRound(round int) {
	if round >= 0 {
		startRound = round
	}
}

// SetLives overrides the starting life count.
func SetLives(lives int) {
	if lives > 0 {
		configuredLives = lives
	}
}

// New creates a new game in attract mode. Reset must be called before the
// first Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("chomp", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "chomp"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Chomp"
}

// Reset initializes/restarts the whole session, entering attract mode.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	*g = Game{
		screenW: cfg.ScreenW,
		screenH: cfg.ScreenH,
	}

	// the round PRNG seed is fixed for reproducible gameplay; a nonzero
	// runtime seed overrides it for casual play
	g.roundSeed = randSeed
	if cfg.Seed != 0 {
		g.roundSeed = uint32(cfg.Seed)
	}

	g.disableAllTriggers()
	g.mode = modeIntro
	g.introStarted.Start(g.clock)
}

// disableAllTriggers puts every trigger into the disabled state. The zero
// Trigger value would fire at tick 0, so this must run before any Step.
func (g *Game) disableAllTriggers() {
	triggers := []*Trigger{
		&g.introStarted, &g.fadeIn, &g.fadeOut,
		&g.started, &g.readyStarted, &g.roundStarted,
		&g.roundWon, &g.gameOver,
		&g.dotEaten, &g.pillEaten, &g.ghostEaten, &g.playerEaten,
		&g.fruitEaten, &g.forceLeaveHouse, &g.fruitActive,
	}
	for _, t := range triggers {
		t.Disable()
	}
	for i := range g.ghosts {
		g.ghosts[i].Frightened.Disable()
		g.ghosts[i].Eaten.Disable()
	}
}

// disableGameTimers disables the per-round gameplay triggers. Called at
// round init so stale events from the previous round never fire.
func (g *Game) disableGameTimers() {
	triggers := []*Trigger{
		&g.roundWon, &g.gameOver,
		&g.dotEaten, &g.pillEaten, &g.ghostEaten, &g.playerEaten,
		&g.fruitEaten, &g.forceLeaveHouse, &g.fruitActive,
	}
	for _, t := range triggers {
		t.Disable()
	}
}

// Step advances the simulation by exactly one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.mode == modeGame {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if !g.inputEnabled {
		in = core.InputFrame{}
	}

	g.clock.Advance()

	// mode transitions are driven by triggers, like everything else
	if g.started.Now(g.clock) {
		g.mode = modeGame
	}
	if g.introStarted.Now(g.clock) {
		g.mode = modeIntro
	}

	switch g.mode {
	case modeIntro:
		g.introTick(in)
	case modeGame:
		g.gameTick(in)
	}

	return core.StepResult{
		State:  g.State(),
		Sounds: g.drainSounds(),
	}
}

// State reports score and lifecycle to the platform. GameOver is only
// reported during the game-over sequence, before the attract screen takes
// over, which gives the platform one window to record the final score.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.score) * 10,
		Round:    g.round + 1,
		Lives:    g.lives,
		GameOver: g.mode == modeGame && g.gameOver.After(g.clock, 0),
		Paused:   g.paused,
	}
}

// gameInit is the one-time initialization when a new game starts.
func (g *Game) gameInit() {
	g.inputEnabled = true
	g.disableGameTimers()
	g.round = startRound
	g.freeze = freezePrelude
	g.lives = configuredLives
	g.globalDotCounterActive = false
	g.globalDotCounter = 0
	g.numDotsEaten = 0
	g.score = 0

	// draw the playfield and the PLAYER ONE / READY! messages
	g.pf.clear(tileSpace, colorDot)
	g.pf.drawText(Point{9, 0}, colorDefault, "HIGH SCORE")
	g.pf.initMaze()
	g.pf.drawText(Point{9, 14}, 0x5, "PLAYER ONE")
	g.pf.drawText(Point{11, 20}, 0x9, "READY!")
}

// roundInit sets up a round: a fresh one after a win (playfield redraw,
// round increment), or a respawn after a lost life (life decrement, global
// dot counter activation).
func (g *Game) roundInit() {
	g.clearSprites()

	// clear the "PLAYER ONE" text
	g.pf.drawText(Point{9, 14}, colorDot, "          ")

	if g.numDotsEaten == numDots {
		// previous round was won: next round on a fresh playfield
		g.round++
		g.numDotsEaten = 0
		g.pf.initMaze()
		g.globalDotCounterActive = false
	} else {
		// previous round was lost: the global dot counter replaces the
		// per-ghost counters until all ghosts have left the house
		if g.lives != configuredLives {
			g.globalDotCounterActive = true
			g.globalDotCounter = 0
		}
		g.lives--
	}
	if g.lives < 0 {
		panic(fmt.Sprintf("chomp: negative lives %d", g.lives))
	}

	g.activeFruit = FruitNone
	g.freeze = freezeReady
	g.rng.seed(g.roundSeed)
	g.numGhostsEaten = 0
	g.disableGameTimers()

	g.pf.drawText(Point{11, 20}, 0x9, "READY!")

	// forces ghosts out of the house when no dots are eaten for a while
	g.forceLeaveHouse.Start(g.clock)

	g.player = Actor{Dir: playerStart.dir, Pos: playerStart.pos}
	g.sprites[spritePlayer] = Sprite{Enabled: true, Color: colorPlayer}

	for i := range g.ghosts {
		kind := GhostKind(i)
		resetGhost(&g.ghosts[i], kind)
		g.sprites[spriteBlinky+i] = Sprite{Enabled: true, Color: colorBlinky + 2*uint8(kind)}
	}
}

// gameTick is the central per-tick gameplay function.
func (g *Game) gameTick(in core.InputFrame) {
	// one-time game init
	if g.started.Now(g.clock) {
		g.fadeIn.Start(g.clock)
		g.readyStarted.StartAfter(g.clock, 2*60)
		g.startSound(0, core.SoundPrelude)
		g.gameInit()
	}
	// new round init (after wins and lost lives)
	if g.readyStarted.Now(g.clock) {
		g.roundInit()
		g.roundStarted.StartAfter(g.clock, 2*60+10)
	}
	if g.roundStarted.Now(g.clock) {
		g.freeze &^= freezeReady
		// clear the 'READY!' message
		g.pf.drawText(Point{11, 20}, colorDot, "      ")
		g.startSound(1, core.SoundSiren)
	}

	// activate and deactivate the bonus fruit
	if g.fruitActive.Now(g.clock) {
		g.activeFruit = levelSpecFor(g.round).bonusFruit
	} else if g.fruitActive.AfterOnce(g.clock, fruitActiveTicks) {
		g.activeFruit = FruitNone
	}

	// when the frightened window closes, the siren takes over again
	if g.pillEaten.AfterOnce(g.clock, levelSpecFor(g.round).frightenedTicks) {
		g.startSound(1, core.SoundSiren)
	}

	// unfreeze after the eat-ghost pause
	if g.freeze&freezeEatGhost != 0 && g.ghostEaten.AfterOnce(g.clock, ghostEatenFreezeTicks) {
		g.freeze &^= freezeEatGhost
	}

	// the death jingle starts when the death animation does
	if g.playerEaten.AfterOnce(g.clock, playerEatenTicks) {
		g.startSound(2, core.SoundDeath)
	}

	// actors only move when nothing holds the simulation frozen; tile and
	// sprite bookkeeping run regardless
	if g.freeze == 0 {
		g.updateActors(in)
	}
	g.updateTiles()
	g.updateSprites()

	if g.score > g.hiscore {
		g.hiscore = g.score
	}

	// end-of-round conditions
	if g.roundWon.Now(g.clock) {
		g.freeze |= freezeWon
		g.readyStarted.StartAfter(g.clock, roundWonTicks)
	}
	if g.gameOver.Now(g.clock) {
		g.pf.drawText(Point{9, 20}, colorBlinky, "GAME  OVER")
		g.inputEnabled = false
		g.fadeOut.StartAfter(g.clock, gameOverTicks)
		g.introStarted.StartAfter(g.clock, gameOverTicks+fadeTicks)
	}
}

// updateActors advances the player and all four ghosts by one tick, in
// that order: dot consumption must precede the house-counter and
// win-condition evaluation the ghosts depend on within the same tick.
func (g *Game) updateActors(in core.InputFrame) {
	g.updatePlayer(in)
	for i := range g.ghosts {
		g.updateGhost(&g.ghosts[i])
	}
}

// numStatusFruits is how many recent rounds show their fruit in the
// bottom-right status row.
const numStatusFruits = 7

// updateTiles refreshes the dynamic background tiles: scores, pill blink,
// lives, fruit history and the won-round playfield blink. Runs every tick
// even while frozen.
func (g *Game) updateTiles() {
	g.pf.drawScore(Point{6, 1}, colorDefault, g.score)
	if g.hiscore > 0 {
		g.pf.drawScore(Point{16, 1}, colorDefault, g.hiscore)
	}

	// energizer pills blink only while the game is live
	for _, pos := range pillTiles {
		if g.freeze != 0 {
			g.pf.setColor(pos, colorDot)
		} else if g.clock.Ticks()&0x8 != 0 {
			g.pf.setColor(pos, colorDot)
		} else {
			g.pf.setColor(pos, colorBlank)
		}
	}

	// the bonus score shown where the fruit was eaten expires after 2s
	if g.fruitEaten.AfterOnce(g.clock, 2*60) {
		g.drawFruitScore(0)
	}

	// remaining lives, bottom left
	for i := 0; i < configuredLives; i++ {
		color := uint8(colorBlank)
		if i < g.lives {
			color = colorPlayer
		}
		g.pf.setTile(Point{2 + 2*i, 34}, tileLife)
		g.pf.setColor(Point{2 + 2*i, 34}, color)
	}

	// bonus fruit history of the last rounds, bottom right
	x := 24
	for i := g.round - numStatusFruits + 1; i <= g.round; i++ {
		if i >= 0 {
			fruit := levelSpecFor(i).bonusFruit
			g.pf.setTile(Point{x, 34}, fruitTiles[fruit].tile)
			g.pf.setColor(Point{x, 34}, fruitTiles[fruit].color)
			x -= 2
		}
	}

	// after a won round the playfield blinks blue/white
	if g.roundWon.After(g.clock, 1*60) {
		if g.roundWon.Since(g.clock)&0x10 != 0 {
			g.pf.colorPlayfield(colorDot)
		} else {
			g.pf.colorPlayfield(colorWhiteBorder)
		}
	}
}

// drawFruitScore shows the bonus value at the fruit position, or clears it
// when bonus is 0.
func (g *Game) drawFruitScore(bonus uint32) {
	if bonus == 0 {
		g.pf.drawText(Point{11, 20}, colorFruitScore, "      ")
		return
	}
	g.pf.drawScore(Point{15, 20}, colorFruitScore, bonus)
}

// fadeLevel returns the current screen fade: 0 fully visible, 255 black.
func (g *Game) fadeLevel() uint8 {
	if g.fadeIn.Between(g.clock, 0, fadeTicks) {
		return uint8(255 - 255*g.fadeIn.Since(g.clock)/fadeTicks)
	}
	if g.fadeOut.Between(g.clock, 0, fadeTicks) {
		return uint8(255 * g.fadeOut.Since(g.clock) / fadeTicks)
	}
	if g.fadeOut.After(g.clock, fadeTicks) && !g.fadeIn.After(g.clock, 0) {
		return 255
	}
	return 0
}

// introTick drives the attract screen: the staggered ghost introductions,
// the point values, and the blinking start prompt.
func (g *Game) introTick(in core.InputFrame) {
	if g.introStarted.Now(g.clock) {
		g.clearAllSounds()
		g.clearSprites()
		g.fadeIn.Start(g.clock)
		g.inputEnabled = true
		g.pf.clear(tileSpace, colorDefault)
		g.pf.drawText(Point{3, 0}, colorDefault, "1UP   HIGH SCORE")
		g.pf.drawScore(Point{6, 1}, colorDefault, 0)
		if g.hiscore > 0 {
			g.pf.drawScore(Point{16, 1}, colorDefault, g.hiscore)
		}
		g.pf.drawText(Point{7, 5}, colorDefault, "CHARACTER / NICKNAME")
	}

	// each ghost appears, then its character, then its nickname
	names := [numGhosts]string{"-SHADOW", "-SPEEDY", "-BASHFUL", "-POKEY"}
	delay := uint32(30)
	for i := 0; i < numGhosts; i++ {
		color := uint8(2*i + 1)
		y := 3*i + 6
		delay += 30
		if g.introStarted.AfterOnce(g.clock, delay) {
			g.pf.setTile(Point{4, y + 1}, tileGhost)
			g.pf.setColor(Point{4, y + 1}, color)
		}
		delay += 60
		if g.introStarted.AfterOnce(g.clock, delay) {
			g.pf.drawText(Point{7, y + 1}, color, names[i])
		}
		delay += 30
		if g.introStarted.AfterOnce(g.clock, delay) {
			g.pf.drawText(Point{17, y + 1}, color, GhostKind(i).String())
		}
	}

	// dot and pill point values
	delay += 60
	if g.introStarted.AfterOnce(g.clock, delay) {
		g.pf.setTile(Point{10, 24}, tileDot)
		g.pf.setColor(Point{10, 24}, colorDot)
		g.pf.drawText(Point{12, 24}, colorDefault, "10 PTS")
		g.pf.setTile(Point{10, 26}, tilePill)
		g.pf.setColor(Point{10, 26}, colorDot)
		g.pf.drawText(Point{12, 26}, colorDefault, "50 PTS")
	}

	// blinking start prompt
	delay += 60
	if g.introStarted.After(g.clock, delay) {
		if g.introStarted.Since(g.clock)&0x20 != 0 {
			g.pf.drawText(Point{3, 31}, 0x3, "                       ")
		} else {
			g.pf.drawText(Point{3, 31}, 0x3, "PRESS ANY KEY TO START!")
		}
	}

	// any key starts the game after a fade
	if in.Any() {
		g.inputEnabled = false
		g.fadeOut.Start(g.clock)
		g.started.StartAfter(g.clock, fadeTicks)
	}
}
