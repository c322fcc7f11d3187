package chomp

import "testing"

func TestDistToTileMid(t *testing.T) {
	tests := []struct {
		pos  Point
		want Point
	}{
		{Point{116, 212}, Point{0, 0}},
		{Point{117, 212}, Point{-1, 0}},
		{Point{114, 215}, Point{2, -3}},
		{Point{112, 212}, Point{4, 0}},
		{Point{8, 8}, Point{4, 4}},
	}
	for _, tt := range tests {
		if got := distToTileMid(tt.pos); got != tt.want {
			t.Errorf("distToTileMid(%+v) = %+v, expected %+v", tt.pos, got, tt.want)
		}
	}
}

func TestCanMovePerpendicularOffset(t *testing.T) {
	var pf playfield
	pf.initMaze()

	// Tile (14, 20) sits in open space; its pixel midpoint is (116, 164).
	center := Point{116, 164}
	offY := Point{116, 166} // off the horizontal centerline

	if !pf.canMove(center, DirLeft, false) {
		t.Error("centered actor should move along an open corridor")
	}
	if pf.canMove(offY, DirLeft, false) {
		t.Error("perpendicular offset must block movement without cornering")
	}
	if !pf.canMove(offY, DirLeft, true) {
		t.Error("cornering must permit movement despite perpendicular offset")
	}
}

func TestCanMoveBlockingAhead(t *testing.T) {
	var pf playfield
	pf.initMaze()

	// Tile (1, 4) is a corridor corner: wall to the left and above.
	center := Point{1*tileSize + 4, 4*tileSize + 4}

	if pf.canMove(center, DirLeft, false) {
		t.Error("centered actor must not move into a wall")
	}
	if !pf.canMove(Point{center.X + 2, center.Y}, DirLeft, false) {
		t.Error("actor short of the tile midpoint may still approach a wall")
	}
	if !pf.canMove(center, DirDown, false) {
		t.Error("open direction should be allowed")
	}
}

func TestMoveWrapsX(t *testing.T) {
	tests := []struct {
		name string
		pos  Point
		dir  Dir
		want Point
	}{
		{"wrap left edge", Point{0, 140}, DirLeft, Point{displayPixelsX - 1, 140}},
		{"wrap right edge", Point{displayPixelsX - 1, 140}, DirRight, Point{0, 140}},
		{"no wrap mid-field", Point{100, 140}, DirRight, Point{101, 140}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := move(tt.pos, tt.dir, false); got != tt.want {
				t.Errorf("move(%+v, %v) = %+v, expected %+v", tt.pos, tt.dir, got, tt.want)
			}
		})
	}
}

func TestMoveCorneringNudge(t *testing.T) {
	// Moving horizontally with a vertical offset nudges one pixel toward
	// the centerline, never past it.
	got := move(Point{116, 166}, DirLeft, true)
	if got != (Point{115, 165}) {
		t.Errorf("move with cornering = %+v, expected {115 165}", got)
	}
	got = move(Point{116, 165}, DirLeft, true)
	if got != (Point{115, 164}) {
		t.Errorf("move with cornering = %+v, expected {115 164}", got)
	}
	// Already centered: no vertical change.
	got = move(Point{116, 164}, DirLeft, true)
	if got != (Point{115, 164}) {
		t.Errorf("move with cornering = %+v, expected {115 164}", got)
	}
}
