package puzzlecube

// Face represents one of the six sides of the cube.
type Face int

const (
	// Up starts as white tiles.
	Up Face = iota
	// Down starts as yellow tiles.
	Down
	// Front starts as blue tiles.
	Front
	// Right starts as orange tiles.
	Right
	// Back starts as green tiles.
	Back
	// Left starts as red tiles.
	Left
)

// Faces lists every face, in a fixed order useful for iteration.
var Faces = [6]Face{Up, Down, Front, Right, Back, Left}

func (f Face) String() string {
	switch f {
	case Up:
		return "U"
	case Down:
		return "D"
	case Front:
		return "F"
	case Right:
		return "R"
	case Back:
		return "B"
	case Left:
		return "L"
	default:
		return "?"
	}
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case Up:
		return Down
	case Down:
		return Up
	case Front:
		return Back
	case Back:
		return Front
	case Right:
		return Left
	case Left:
		return Right
	default:
		return f
	}
}

// EdgeAlignment describes which edge of a neighbouring face's grid borders
// the rotating face, in terms of the neighbour's own row-major storage.
//
// For a 3x3 side with positions numbered:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// the variants select:
//
//	InnerFirst = 0, 1, 2    (first row)
//	InnerLast  = 6, 7, 8    (last row)
//	OuterStart = 0, 3, 6    (first column)
//	OuterEnd   = 2, 5, 8    (last column)
type EdgeAlignment int

const (
	// OuterStart selects the first column, read top to bottom.
	OuterStart EdgeAlignment = iota
	// OuterEnd selects the last column. Its traversal order is reversed
	// relative to OuterStart so that clockwise ordering is preserved.
	OuterEnd
	// InnerFirst selects the first row. Its traversal order is reversed
	// relative to InnerLast so that clockwise ordering is preserved.
	InnerFirst
	// InnerLast selects the last row, read left to right.
	InnerLast
)

func (a EdgeAlignment) String() string {
	switch a {
	case OuterStart:
		return "OuterStart"
	case OuterEnd:
		return "OuterEnd"
	case InnerFirst:
		return "InnerFirst"
	case InnerLast:
		return "InnerLast"
	default:
		return "?"
	}
}

// AdjacentFace pairs a neighbouring face with the edge of that neighbour's
// grid that borders the rotating face.
type AdjacentFace struct {
	Face      Face
	Alignment EdgeAlignment
}

// AdjacentFacesClockwise returns the four faces bordering f, in clockwise
// order as seen looking directly at f from outside the cube, each with the
// alignment of its shared edge.
func (f Face) AdjacentFacesClockwise() [4]AdjacentFace {
	switch f {
	case Up:
		return [4]AdjacentFace{
			{Front, InnerFirst},
			{Left, InnerFirst},
			{Back, InnerFirst},
			{Right, InnerFirst},
		}
	case Down:
		return [4]AdjacentFace{
			{Front, InnerLast},
			{Right, InnerLast},
			{Back, InnerLast},
			{Left, InnerLast},
		}
	case Front:
		return [4]AdjacentFace{
			{Up, InnerLast},
			{Right, OuterStart},
			{Down, InnerFirst},
			{Left, OuterEnd},
		}
	case Right:
		return [4]AdjacentFace{
			{Up, OuterEnd},
			{Back, OuterStart},
			{Down, OuterEnd},
			{Front, OuterEnd},
		}
	case Back:
		return [4]AdjacentFace{
			{Up, InnerFirst},
			{Left, OuterStart},
			{Down, InnerLast},
			{Right, OuterEnd},
		}
	case Left:
		return [4]AdjacentFace{
			{Up, OuterStart},
			{Front, OuterStart},
			{Down, OuterStart},
			{Back, OuterEnd},
		}
	default:
		return [4]AdjacentFace{}
	}
}
