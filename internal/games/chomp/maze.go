package chomp

import "fmt"

// Maze landmarks, in pixels unless noted.
const (
	// antePortas is the pixel position just outside the ghost house door,
	// where eyes re-enter and leaving ghosts emerge.
	antePortasX = 14 * tileSize
	antePortasY = 14*tileSize + tileSize/2
)

// numDots is the round-win count: 240 small dots plus 4 pills.
const (
	numDots  = 244
	numPills = 4
)

// pillTiles are the four energizer positions, used for the blink effect.
var pillTiles = [numPills]Point{{1, 6}, {26, 6}, {1, 26}, {26, 26}}

// playfield is the mutable 28x36 tile/color grid. Tiles and colors are
// independently mutable; the only gameplay mutation is dot and pill
// consumption, everything else is presentation bookkeeping.
type playfield struct {
	tiles  [displayTilesY][displayTilesX]uint8
	colors [displayTilesY][displayTilesX]uint8
}

// mazeTemplate is the maze layout for rows 3..33. Each character maps to a
// wall, dot, pill or door tile code via the decode table in initMaze.
var mazeTemplate = [31]string{
	//0123456789012345678901234567
	"0UUUUUUUUUUUU45UUUUUUUUUUUU1", // 3
	"L............rl............R", // 4
	"L.ebbf.ebbbf.rl.ebbbf.ebbf.R", // 5
	"LPr  l.r   l.rl.r   l.r  lPR", // 6
	"L.guuh.guuuh.gh.guuuh.guuh.R", // 7
	"L..........................R", // 8
	"L.ebbf.ef.ebbbbbbf.ef.ebbf.R", // 9
	"L.guuh.rl.guuyxuuh.rl.guuh.R", // 10
	"L......rl....rl....rl......R", // 11
	"2BBBBf.rzbbf rl ebbwl.eBBBB3", // 12
	"     L.rxuuh gh guuyl.R     ", // 13
	"     L.rl          rl.R     ", // 14
	"     L.rl mjs--tjn rl.R     ", // 15
	"UUUUUh.gh i      q gh.gUUUUU", // 16
	"      .   i      q   .      ", // 17
	"BBBBBf.ef i      q ef.eBBBBB", // 18
	"     L.rl okkkkkkp rl.R     ", // 19
	"     L.rl          rl.R     ", // 20
	"     L.rl ebbbbbbf rl.R     ", // 21
	"0UUUUh.gh guuyxuuh gh.gUUUU1", // 22
	"L............rl............R", // 23
	"L.ebbf.ebbbf.rl.ebbbf.ebbf.R", // 24
	"L.guyl.guuuh.gh.guuuh.rxuh.R", // 25
	"LP..rl.......  .......rl..PR", // 26
	"6bf.rl.ef.ebbbbbbf.ef.rl.eb8", // 27
	"7uh.gh.rl.guuyxuuh.rl.gh.gu9", // 28
	"L......rl....rl....rl......R", // 29
	"L.ebbbbwzbbf.rl.ebbwzbbbbf.R", // 30
	"L.guuuuuuuuh.gh.guuuuuuuuh.R", // 31
	"L..........................R", // 32
	"2BBBBBBBBBBBBBBBBBBBBBBBBBB3", // 33
}

// initMaze decodes the template into the tile matrix and paints the ghost
// house gate. Called at game start and at the start of every freshly-won
// round, never at life-loss respawn.
func (pf *playfield) initMaze() {
	var decode [128]uint8
	for i := range decode {
		decode[i] = tileDot
	}
	for ch, code := range map[byte]uint8{
		' ': tileSpace, '0': 0xD1, '1': 0xD0, '2': 0xD5, '3': 0xD4,
		'4': 0xFB, '5': 0xFA, '6': 0xD7, '7': 0xD9, '8': 0xD6, '9': 0xD8,
		'U': 0xDB, 'L': 0xD3, 'R': 0xD2, 'B': 0xDC, 'b': 0xDF,
		'e': 0xE7, 'f': 0xE6, 'g': 0xEB, 'h': 0xEA, 'l': 0xE8, 'r': 0xE9,
		'u': 0xE5, 'w': 0xF5, 'x': 0xF2, 'y': 0xF3, 'z': 0xF4,
		'm': 0xED, 'n': 0xEC, 'o': 0xEF, 'p': 0xEE, 'j': 0xDD,
		'i': 0xD2, 'k': 0xDB, 'q': 0xD3, 's': 0xF1, 't': 0xF0,
		'-': tileDoor, 'P': tilePill,
	} {
		decode[ch] = code
	}
	for row, line := range mazeTemplate {
		y := row + 3
		for x := 0; x < displayTilesX; x++ {
			pf.tiles[y][x] = decode[line[x]&127]
		}
	}

	// ghost house gate colors
	pf.setColor(Point{13, 15}, colorGhostScore)
	pf.setColor(Point{14, 15}, colorGhostScore)
}

// clear fills the whole grid with one tile and color.
func (pf *playfield) clear(tileCode, colorCode uint8) {
	for y := 0; y < displayTilesY; y++ {
		for x := 0; x < displayTilesX; x++ {
			pf.tiles[y][x] = tileCode
			pf.colors[y][x] = colorCode
		}
	}
}

// colorPlayfield paints the maze rows in one color, preserving tiles.
// Used for round init and the won-round border blink.
func (pf *playfield) colorPlayfield(colorCode uint8) {
	for y := 3; y <= 33; y++ {
		for x := 0; x < displayTilesX; x++ {
			pf.colors[y][x] = colorCode
		}
	}
}

func validTilePos(tile Point) bool {
	return tile.X >= 0 && tile.X < displayTilesX && tile.Y >= 0 && tile.Y < displayTilesY
}

func (pf *playfield) setTile(tile Point, code uint8) {
	if !validTilePos(tile) {
		panic(fmt.Sprintf("chomp: tile position out of range: %+v", tile))
	}
	pf.tiles[tile.Y][tile.X] = code
}

func (pf *playfield) setColor(tile Point, code uint8) {
	if !validTilePos(tile) {
		panic(fmt.Sprintf("chomp: tile position out of range: %+v", tile))
	}
	pf.colors[tile.Y][tile.X] = code
}

// tileAt returns the tile code at a clamped maze coordinate.
func (pf *playfield) tileAt(tile Point) uint8 {
	t := clampedTilePos(tile)
	return pf.tiles[t.Y][t.X]
}

// isBlocking reports whether the tile cannot be entered (walls and the
// ghost house door).
func (pf *playfield) isBlocking(tile Point) bool {
	return pf.tileAt(tile) >= tileBlocking
}

func (pf *playfield) isDot(tile Point) bool {
	return pf.tileAt(tile) == tileDot
}

func (pf *playfield) isPill(tile Point) bool {
	return pf.tileAt(tile) == tilePill
}

// isTunnel reports whether the tile is inside one of the two wraparound
// corridors on row 17.
func isTunnel(tile Point) bool {
	return tile.Y == 17 && (tile.X <= 5 || tile.X >= 22)
}

// isRedZone reports whether the tile is inside one of the two zones where
// ghosts (except eyes) must not turn upward, replicating the original
// maze-exploit avoidance.
func isRedZone(tile Point) bool {
	return tile.X >= 11 && tile.X <= 16 && (tile.Y == 14 || tile.Y == 26)
}

// pixelToTile converts a pixel position to its containing tile.
func pixelToTile(pos Point) Point {
	return Point{X: pos.X / tileSize, Y: pos.Y / tileSize}
}

// clampedTilePos converts an arbitrary tile coordinate to a valid maze
// coordinate (x clamped to the grid, y clamped to the maze rows).
func clampedTilePos(tile Point) Point {
	return Point{
		X: clampInt(tile.X, 0, displayTilesX-1),
		Y: clampInt(tile.Y, 3, displayTilesY-3),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// drawText writes text into the tile matrix starting at a tile position,
// painting each cell with the given color code. Printable ASCII is stored
// as-is; the renderer draws these codes verbatim.
func (pf *playfield) drawText(tile Point, colorCode uint8, text string) {
	for i := 0; i < len(text); i++ {
		p := Point{X: tile.X + i, Y: tile.Y}
		if !validTilePos(p) {
			continue
		}
		pf.tiles[p.Y][p.X] = convChar(text[i])
		pf.colors[p.Y][p.X] = colorCode
	}
}

// convChar maps an ASCII character to its tile code. Letters and digits
// are stored at their ASCII values; space becomes the empty tile.
func convChar(c byte) uint8 {
	if c == ' ' {
		return tileSpace
	}
	return c
}

// drawScore writes a right-aligned score with the trailing zero of the
// displayed x10 scaling. pos is the tile of the rightmost digit.
func (pf *playfield) drawScore(tile Point, colorCode uint8, score uint32) {
	pf.drawText(tile, colorCode, "0")
	tile.X--
	for score > 0 {
		pf.drawText(tile, colorCode, string(rune('0'+score%10)))
		score /= 10
		tile.X--
		if tile.X < 0 {
			break
		}
	}
}
