package chomp

// Dir is a cardinal movement direction. The numeric order matters: bit 0
// distinguishes horizontal (0) from vertical (1) movement, which the
// sprite animation and movement code rely on.
type Dir uint8

const (
	DirRight Dir = iota
	DirDown
	DirLeft
	DirUp
	numDirs
)

// IsVertical returns true for DirUp and DirDown.
func (d Dir) IsVertical() bool {
	return d&1 != 0
}

// Reverse returns the opposite direction.
func (d Dir) Reverse() Dir {
	return (d + 2) % numDirs
}

// Vector returns the unit pixel step for the direction.
func (d Dir) Vector() Point {
	switch d {
	case DirRight:
		return Point{X: 1}
	case DirDown:
		return Point{Y: 1}
	case DirLeft:
		return Point{X: -1}
	case DirUp:
		return Point{Y: -1}
	default:
		return Point{}
	}
}

// String returns a human-readable name for the direction.
func (d Dir) String() string {
	switch d {
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// Point is a 2D integer coordinate, in pixels or tiles depending on context.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s int) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// SquaredDist returns the squared euclidean distance to q.
func (p Point) SquaredDist(q Point) int {
	d := p.Sub(q)
	return d.X*d.X + d.Y*d.Y
}

// NearEqual reports whether q is within tolerance on both axes. Used for
// landmark checks by actors that move more than one pixel per tick.
func (p Point) NearEqual(q Point, tolerance int) bool {
	return abs(p.X-q.X) <= tolerance && abs(p.Y-q.Y) <= tolerance
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
