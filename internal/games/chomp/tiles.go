package chomp

// Playfield geometry. The display is a 28x36 grid of 8x8-pixel tiles;
// rows 0..2 hold the score header, rows 3..33 the maze, rows 34..35 the
// lives and fruit status.
const (
	tileSize       = 8
	displayTilesX  = 28
	displayTilesY  = 36
	displayPixelsX = displayTilesX * tileSize
	displayPixelsY = displayTilesY * tileSize
)

// Tile codes stored in the tile matrix. Codes at or above tileBlocking are
// impassable (walls and the ghost house door). Traversal depends on tile
// codes only, never on color codes.
const (
	tileDot   = 0x10
	tileLife  = 0x20
	tileSpace = 0x40
	tilePill  = 0x14
	tileGhost = 0xB0
	tileDoor  = 0xCF

	tileBlocking = 0xC0
)

// Fruit tile codes (status row and active-fruit sprite).
const (
	tileCherries   = 0x90
	tileStrawberry = 0x94
	tilePeach      = 0x98
	tileBell       = 0x9C
	tileApple      = 0xA0
	tileGrapes     = 0xA4
	tileGalaxian   = 0xA8
	tileKey        = 0xAC
)

// Color codes stored in the color matrix. These follow the original
// hardware palette indices; the renderer maps them to terminal colors.
const (
	colorBlank              = 0x00
	colorDefault            = 0x0F
	colorDot                = 0x10
	colorPlayer             = 0x09
	colorBlinky             = 0x01
	colorPinky              = 0x03
	colorInky               = 0x05
	colorClyde              = 0x07
	colorFrightened         = 0x11
	colorFrightenedBlinking = 0x12
	colorGhostScore         = 0x18
	colorEyes               = 0x19
	colorCherries           = 0x14
	colorStrawberry         = 0x0F
	colorPeach              = 0x15
	colorBell               = 0x16
	colorGrapes             = 0x17
	colorWhiteBorder        = 0x1F

	// The hardware palette reuses entries; these names keep the call
	// sites readable without minting new codes.
	colorApple      = colorCherries
	colorGalaxian   = colorPlayer
	colorKey        = colorBell
	colorFruitScore = colorPinky
)
