package chomp

import "github.com/mkravets/chomp-arcade/internal/core"

// The renderer maps the tile/color grid and the sprite slots into the
// terminal cell buffer. Everything here is presentation: the simulation
// never reads the screen back.

// colorToCore maps a hardware palette code to a terminal color.
func colorToCore(code uint8) core.Color {
	switch code {
	case colorBlank:
		return core.ColorGray
	case colorBlinky:
		return core.ColorBrightRed
	case colorPinky: // fruit-score digits share this slot
		return core.ColorBrightMagenta
	case colorInky: // "PLAYER ONE" text shares this slot
		return core.ColorBrightCyan
	case colorClyde:
		return core.ColorOrange
	case colorPlayer: // the galaxian fruit and "READY!" text share this slot
		return core.ColorBrightYellow
	case colorDot:
		return core.ColorYellow
	case colorFrightened:
		return core.ColorBlue
	case colorFrightenedBlinking, colorWhiteBorder:
		return core.ColorBrightWhite
	case colorGhostScore:
		return core.ColorBrightCyan
	case colorEyes:
		return core.ColorBrightWhite
	case colorCherries: // the apple shares this slot
		return core.ColorRed
	case colorPeach, colorKey:
		return core.ColorOrange
	case colorGrapes:
		return core.ColorGreen
	default:
		return core.ColorWhite
	}
}

// fruitRunes maps fruit tile codes to their terminal glyphs.
var fruitRunes = map[uint8]rune{
	tileCherries:   '%',
	tileStrawberry: '$',
	tilePeach:      '@',
	tileApple:      'O',
	tileGrapes:     '8',
	tileGalaxian:   'W',
	tileBell:       '&',
	tileKey:        '~',
}

// tileRune maps a playfield tile code to its terminal glyph.
func tileRune(code uint8) rune {
	switch {
	case code == tileSpace:
		return ' '
	case code == tileDot:
		return '·'
	case code == tilePill:
		return '●'
	case code == tileDoor:
		return '─'
	case code == tileLife:
		return 'C'
	case code >= tileGhost && code < tileGhost+6:
		return '∩'
	case code >= tileBlocking:
		return '█'
	default:
		if r, ok := fruitRunes[code]; ok {
			return r
		}
		// text cells store printable ASCII directly
		if code >= 0x21 && code <= 0x5A {
			return rune(code)
		}
		return ' '
	}
}

// ghostScoreText is what an eaten ghost's sprite shows for a moment.
var ghostScoreText = [4]string{"200", "400", "800", "1600"}

// Render draws the current frame: the tile grid, then the six sprites on
// top, centered in the destination screen.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w < displayTilesX || h < displayTilesY {
		dst.DrawTextCentered(h/2, "Window too small")
		dst.DrawTextCentered(h/2+1, "Need at least 28x36")
		return
	}
	offX := (w - displayTilesX) / 2
	offY := (h - displayTilesY) / 2

	fade := g.fadeLevel()
	if fade >= 128 {
		return
	}
	dimmed := fade > 0

	// background tiles
	for y := 0; y < displayTilesY; y++ {
		for x := 0; x < displayTilesX; x++ {
			code := g.pf.tiles[y][x]
			r := tileRune(code)
			if r == ' ' {
				continue
			}
			c := colorToCore(g.pf.colors[y][x])
			// walls take their color from the playfield palette, which is
			// what makes the won-round white blink work
			if code >= tileBlocking && g.pf.colors[y][x] == colorDot {
				c = core.ColorBlue
			}
			if dimmed {
				c = core.ColorGray
			}
			dst.SetCell(offX+x, offY+y, r, c)
		}
	}

	// sprites
	for i := range g.sprites {
		spr := &g.sprites[i]
		if !spr.Enabled || spr.Tile == spriteTileInvisible {
			continue
		}
		center := spr.Pos.Add(Point{spriteSize / 2, spriteSize / 2})
		cell := pixelToTile(center)
		c := colorToCore(spr.Color)
		if dimmed {
			c = core.ColorGray
		}
		switch {
		case spr.Tile >= spriteTileScore200 && spr.Tile < spriteTileScore200+4:
			text := ghostScoreText[spr.Tile-spriteTileScore200]
			dst.DrawColorText(offX+cell.X-1, offY+cell.Y, c, text)
		case spr.Tile >= 52 && spr.Tile <= 63:
			// death animation collapses into a star
			dst.SetCell(offX+cell.X, offY+cell.Y, '*', c)
		case spr.Tile >= 44 && spr.Tile <= 48:
			dst.SetCell(offX+cell.X, offY+cell.Y, 'C', c)
		case spr.Tile >= 28 && spr.Tile <= 39:
			r := '∩'
			if spr.Color == colorEyes {
				r = '"'
			}
			dst.SetCell(offX+cell.X, offY+cell.Y, r, c)
		default:
			if r, ok := fruitRunes[spr.Tile]; ok {
				dst.SetCell(offX+cell.X, offY+cell.Y, r, c)
			}
		}
	}

	if g.paused {
		dst.DrawTextCentered(offY+displayTilesY/2, " PAUSED ")
	}
}
