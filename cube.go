// Package puzzlecube models an NxNxN twisty puzzle cube: a grid-of-faces
// state plus an algebra of 90° rotations and a text notation for composing
// them. Presentation layers read cube state through Side and SideLength and
// mutate it only by issuing Rotation values to Rotate.
package puzzlecube

import "strings"

// Grid is an N×N row-major matrix of tiles holding the current state of one
// face. Grids returned by Side must be treated as read-only.
type Grid [][]Tile

// Cube is a twisty puzzle cube with sideLength tiles along each edge. It is
// mutated in place by Rotate and owned exclusively by its caller; the engine
// retains no references between calls.
type Cube struct {
	sideLength int
	sides      [6]Grid
}

// New creates a solved cube with sideLength tiles along each edge, each face
// solid in its solved colour.
func New(sideLength int) (*Cube, error) {
	if sideLength < 1 {
		return nil, ErrSideLength
	}
	c := &Cube{sideLength: sideLength}
	for _, f := range Faces {
		c.sides[f] = newGrid(sideLength, SolvedColour(f), false)
	}
	return c, nil
}

// NewLabeled creates a solved cube where every tile additionally carries a
// unique label character per face, so that equality can observe pure
// in-place rotations of a uniformly coloured face. Labels are drawn from a
// contiguous character range starting at '0', which limits the side length
// to 8 to keep every label a single printable glyph.
func NewLabeled(sideLength int) (*Cube, error) {
	if sideLength < 1 || sideLength > 8 {
		return nil, ErrLabeledSideLength
	}
	c := &Cube{sideLength: sideLength}
	for _, f := range Faces {
		c.sides[f] = newGrid(sideLength, SolvedColour(f), true)
	}
	return c, nil
}

func newGrid(sideLength int, colour Colour, labeled bool) Grid {
	g := make(Grid, sideLength)
	for row := range g {
		g[row] = make([]Tile, sideLength)
		for col := range g[row] {
			t := Tile{Colour: colour}
			if labeled {
				t.Label = rune('0' + row*sideLength + col)
			}
			g[row][col] = t
		}
	}
	return g
}

// SideLength returns the number of tiles along each edge.
func (c *Cube) SideLength() int {
	return c.sideLength
}

// Side returns the grid of tiles currently on face. The returned grid is the
// cube's live state and must not be modified by callers.
func (c *Cube) Side(face Face) Grid {
	return c.sides[face]
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{sideLength: c.sideLength}
	for _, f := range Faces {
		g := make(Grid, c.sideLength)
		for row := range g {
			g[row] = make([]Tile, c.sideLength)
			copy(g[row], c.sides[f][row])
		}
		clone.sides[f] = g
	}
	return clone
}

// Equal reports whether both cubes hold identical state, tile for tile
// including labels.
func (c *Cube) Equal(other *Cube) bool {
	if other == nil || c.sideLength != other.sideLength {
		return false
	}
	for _, f := range Faces {
		for row := range c.sides[f] {
			for col := range c.sides[f][row] {
				if c.sides[f][row][col] != other.sides[f][row][col] {
					return false
				}
			}
		}
	}
	return true
}

// IsSolved reports whether every face is a single colour.
func (c *Cube) IsSolved() bool {
	for _, f := range Faces {
		colour := c.sides[f][0][0].Colour
		for _, row := range c.sides[f] {
			for _, t := range row {
				if t.Colour != colour {
					return false
				}
			}
		}
	}
	return true
}

// String returns the unfolded-net text layout of the cube: the Up face
// indented, the Left/Front/Right/Back faces side by side, then the Down
// face indented. Each tile renders as its glyph.
func (c *Cube) String() string {
	var b strings.Builder
	c.writeIndentedSide(&b, Up)
	c.writeFourSides(&b, Left, Front, Right, Back)
	c.writeIndentedSide(&b, Down)
	return b.String()
}

func (c *Cube) writeIndentedSide(b *strings.Builder, face Face) {
	for _, row := range c.sides[face] {
		b.WriteString(strings.Repeat("  ", c.sideLength))
		writeTileRow(b, row)
		b.WriteByte('\n')
	}
}

func (c *Cube) writeFourSides(b *strings.Builder, faces ...Face) {
	for row := 0; row < c.sideLength; row++ {
		for i, f := range faces {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeTileRow(b, c.sides[f][row])
		}
		b.WriteByte('\n')
	}
}

func writeTileRow(b *strings.Builder, row []Tile) {
	for i, t := range row {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(t.Glyph())
	}
}
