package chomp

import "testing"

func TestInitMazeDotCount(t *testing.T) {
	var pf playfield
	pf.initMaze()

	dots, pills := 0, 0
	for y := 0; y < displayTilesY; y++ {
		for x := 0; x < displayTilesX; x++ {
			switch pf.tiles[y][x] {
			case tileDot:
				dots++
			case tilePill:
				pills++
			}
		}
	}
	if pills != numPills {
		t.Errorf("pill count = %d, expected %d", pills, numPills)
	}
	if dots+pills != numDots {
		t.Errorf("dot+pill count = %d, expected %d", dots+pills, numDots)
	}
	for _, p := range pillTiles {
		if !pf.isPill(p) {
			t.Errorf("expected pill at %+v", p)
		}
	}
}

func TestInitMazeDoorBlocks(t *testing.T) {
	var pf playfield
	pf.initMaze()

	tests := []struct {
		name string
		tile Point
		want bool
	}{
		{"ghost house door", Point{13, 15}, true},
		{"outer wall", Point{0, 3}, true},
		{"corridor under house", Point{13, 17}, false},
		{"player start row", Point{14, 26}, false},
		{"tunnel mouth", Point{0, 17}, false},
	}
	for _, tt := range tests {
		if got := pf.isBlocking(tt.tile); got != tt.want {
			t.Errorf("%s: isBlocking(%+v) = %v, expected %v", tt.name, tt.tile, got, tt.want)
		}
	}
}

func TestIsTunnel(t *testing.T) {
	tests := []struct {
		tile Point
		want bool
	}{
		{Point{0, 17}, true},
		{Point{5, 17}, true},
		{Point{6, 17}, false},
		{Point{21, 17}, false},
		{Point{22, 17}, true},
		{Point{27, 17}, true},
		{Point{3, 16}, false},
	}
	for _, tt := range tests {
		if got := isTunnel(tt.tile); got != tt.want {
			t.Errorf("isTunnel(%+v) = %v, expected %v", tt.tile, got, tt.want)
		}
	}
}

func TestIsRedZone(t *testing.T) {
	tests := []struct {
		tile Point
		want bool
	}{
		{Point{11, 14}, true},
		{Point{16, 14}, true},
		{Point{13, 26}, true},
		{Point{10, 14}, false},
		{Point{17, 26}, false},
		{Point{13, 15}, false},
	}
	for _, tt := range tests {
		if got := isRedZone(tt.tile); got != tt.want {
			t.Errorf("isRedZone(%+v) = %v, expected %v", tt.tile, got, tt.want)
		}
	}
}

func TestClampedTilePos(t *testing.T) {
	tests := []struct {
		in   Point
		want Point
	}{
		{Point{-1, 17}, Point{0, 17}},
		{Point{28, 17}, Point{27, 17}},
		{Point{14, 0}, Point{14, 3}},
		{Point{14, 35}, Point{14, 33}},
		{Point{14, 20}, Point{14, 20}},
	}
	for _, tt := range tests {
		if got := clampedTilePos(tt.in); got != tt.want {
			t.Errorf("clampedTilePos(%+v) = %+v, expected %+v", tt.in, got, tt.want)
		}
	}
}

func TestDrawScoreRightAligned(t *testing.T) {
	var pf playfield
	pf.clear(tileSpace, colorDefault)
	pf.drawScore(Point{6, 1}, colorDefault, 123)

	want := map[Point]uint8{
		{6, 1}: '0', // trailing zero of the x10 display
		{5, 1}: '3',
		{4, 1}: '2',
		{3, 1}: '1',
		{2, 1}: tileSpace,
	}
	for tile, code := range want {
		if got := pf.tiles[tile.Y][tile.X]; got != code {
			t.Errorf("tile %+v = %#02X, expected %#02X", tile, got, code)
		}
	}
}
