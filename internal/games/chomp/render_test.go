package chomp

import (
	"testing"

	"github.com/mkravets/chomp-arcade/internal/core"
)

func TestColorToCoreSharedPaletteSlots(t *testing.T) {
	tests := []struct {
		name string
		code uint8
		want core.Color
	}{
		{"player", colorPlayer, core.ColorBrightYellow},
		{"galaxian shares the player slot", colorGalaxian, core.ColorBrightYellow},
		{"cherries", colorCherries, core.ColorRed},
		{"apple shares the cherries slot", colorApple, core.ColorRed},
		{"fruit score shares the pinky slot", colorFruitScore, core.ColorBrightMagenta},
		{"key shares the bell slot", colorKey, core.ColorOrange},
		{"ready text renders yellow", 0x09, core.ColorBrightYellow},
		{"player one text renders cyan", 0x05, core.ColorBrightCyan},
		{"unknown code falls back to white", 0x2A, core.ColorWhite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorToCore(tt.code); got != tt.want {
				t.Errorf("colorToCore(%#02x) = %v, expected %v", tt.code, got, tt.want)
			}
		})
	}
}
