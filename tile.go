package puzzlecube

// Colour represents one of the six tile colours.
type Colour byte

const (
	White Colour = iota
	Yellow
	Blue
	Orange
	Green
	Red
)

func (c Colour) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Blue:
		return "B"
	case Orange:
		return "O"
	case Green:
		return "G"
	case Red:
		return "R"
	default:
		return "?"
	}
}

// SolvedColour returns the colour a face holds on a freshly created cube:
// Up=white, Down=yellow, Front=blue, Right=orange, Back=green, Left=red.
func SolvedColour(f Face) Colour {
	switch f {
	case Up:
		return White
	case Down:
		return Yellow
	case Front:
		return Blue
	case Right:
		return Orange
	case Back:
		return Green
	case Left:
		return Red
	default:
		return White
	}
}

// DefaultTileGlyph is rendered for tiles that carry no label.
const DefaultTileGlyph = '■'

// Tile is one cell of a face's grid. The optional Label (zero when absent)
// distinguishes otherwise identical tiles, which makes pure in-place face
// rotations observable through equality.
type Tile struct {
	Colour Colour
	Label  rune
}

// Glyph returns the character used to render this tile: its label if it has
// one, the default square otherwise.
func (t Tile) Glyph() rune {
	if t.Label != 0 {
		return t.Label
	}
	return DefaultTileGlyph
}
