package chomp

// Fruit identifies the bonus item of a round.
type Fruit uint8

const (
	FruitNone Fruit = iota
	FruitCherries
	FruitStrawberry
	FruitPeach
	FruitApple
	FruitGrapes
	FruitGalaxian
	FruitBell
	FruitKey
	numFruits
)

// String returns the fruit's display name.
func (f Fruit) String() string {
	switch f {
	case FruitNone:
		return "None"
	case FruitCherries:
		return "Cherries"
	case FruitStrawberry:
		return "Strawberry"
	case FruitPeach:
		return "Peach"
	case FruitApple:
		return "Apple"
	case FruitGrapes:
		return "Grapes"
	case FruitGalaxian:
		return "Galaxian"
	case FruitBell:
		return "Bell"
	case FruitKey:
		return "Key"
	default:
		return "Unknown"
	}
}

// fruitTiles maps fruits to their tile and color codes for the status row
// and the active-fruit sprite.
var fruitTiles = [numFruits]struct {
	tile, color uint8
}{
	FruitNone:       {tileSpace, colorBlank},
	FruitCherries:   {tileCherries, colorCherries},
	FruitStrawberry: {tileStrawberry, colorStrawberry},
	FruitPeach:      {tilePeach, colorPeach},
	FruitApple:      {tileApple, colorApple},
	FruitGrapes:     {tileGrapes, colorGrapes},
	FruitGalaxian:   {tileGalaxian, colorGalaxian},
	FruitBell:       {tileBell, colorBell},
	FruitKey:        {tileKey, colorKey},
}

// levelSpec is one row of the per-round difficulty table: the bonus fruit,
// its score value (in internal units, displayed x10), and how long ghosts
// stay frightened after a pill.
type levelSpec struct {
	bonusFruit      Fruit
	bonusScore      uint32
	frightenedTicks uint32
}

// levelSpecTable is indexed by round and clamped at the last entry, so
// rounds past the table reuse the final spec.
var levelSpecTable = []levelSpec{
	{FruitCherries, 10, 6 * 60},
	{FruitStrawberry, 30, 5 * 60},
	{FruitPeach, 50, 4 * 60},
	{FruitPeach, 50, 3 * 60},
	{FruitApple, 70, 2 * 60},
	{FruitApple, 70, 5 * 60},
	{FruitGrapes, 100, 2 * 60},
	{FruitGrapes, 100, 2 * 60},
	{FruitGalaxian, 200, 1 * 60},
	{FruitGalaxian, 200, 5 * 60},
	{FruitBell, 300, 2 * 60},
	{FruitBell, 300, 1 * 60},
	{FruitKey, 500, 1 * 60},
	{FruitKey, 500, 3 * 60},
	{FruitKey, 500, 1 * 60},
	{FruitKey, 500, 1 * 60},
	{FruitKey, 500, 1},
	{FruitKey, 500, 1 * 60},
	{FruitKey, 500, 1},
	{FruitKey, 500, 1},
	{FruitKey, 500, 1},
}

// levelSpecFor returns the spec for a 0-based round index.
func levelSpecFor(round int) levelSpec {
	if round >= len(levelSpecTable) {
		round = len(levelSpecTable) - 1
	}
	return levelSpecTable[round]
}
