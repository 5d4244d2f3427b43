// Package transforms provides pre-defined rotation sequences that produce
// visually pleasing patterns on a cube.
package transforms

import (
	"github.com/puzzlecube/puzzlecube"
	"github.com/puzzlecube/puzzlecube/notation"
)

const (
	checkerboardCorners3x3x3 = "R2 L2 F2 B2 U2 D2"
	crosses3x3x3             = "R2 L' D F2 R' D' R' L U' D R D B2 R' U D2"
	nestedCube3x3x3          = "F R' U' F' U L' B U' B2 U' F' R' B R2 F U L U"
	nestedCube4x4x4          = "B' Lw2 L2 Rw2 R2 U2 Lw2 L2 Rw2 R2 B F2 R U' R U R2 U R2 F' U F' Uw Lw Uw' Fw2 Dw Rw' Uw Fw Dw2 Rw2"
)

// Transform names a pre-defined pattern sequence.
type Transform int

const (
	// CheckerboardCorners3x3x3 turns a 3x3x3 cube into a checkerboard:
	// each face alternates its own colour with its opposite face's colour.
	CheckerboardCorners3x3x3 Transform = iota
	// Crosses3x3x3 puts a cross (plus sign) on each side of a 3x3x3 cube.
	Crosses3x3x3
	// NestedCube3x3x3 turns a 3x3x3 cube into 3 nested cubes.
	NestedCube3x3x3
	// NestedCube4x4x4 turns a 4x4x4 cube into 4 nested cubes. It needs a
	// cube at least 4 tiles wide and only looks right at exactly 4.
	NestedCube4x4x4
)

// All lists every known transform.
var All = []Transform{
	CheckerboardCorners3x3x3,
	Crosses3x3x3,
	NestedCube3x3x3,
	NestedCube4x4x4,
}

// Name returns a short display name for the transform.
func (t Transform) Name() string {
	switch t {
	case CheckerboardCorners3x3x3:
		return "Checkerboard Corners"
	case Crosses3x3x3:
		return "Crosses"
	case NestedCube3x3x3:
		return "Nested Cubes (3)"
	case NestedCube4x4x4:
		return "Nested Cubes (4)"
	default:
		return "Unknown"
	}
}

// Description explains what the transform does and what cube sizes it suits.
func (t Transform) Description() string {
	switch t {
	case NestedCube4x4x4:
		return "Designed for 4x4x4 cubes, runs on any cube 4x4x4 or larger but only has the intended effect at exactly 4x4x4"
	default:
		return "Designed for 3x3x3 cubes, can run on any size cube"
	}
}

// MinimumSideLength returns the smallest side length the transform is valid
// for.
func (t Transform) MinimumSideLength() int {
	if t == NestedCube4x4x4 {
		return 4
	}
	return 1
}

// Notation returns the transform's move sequence in notation text.
func (t Transform) Notation() string {
	switch t {
	case CheckerboardCorners3x3x3:
		return checkerboardCorners3x3x3
	case Crosses3x3x3:
		return crosses3x3x3
	case NestedCube3x3x3:
		return nestedCube3x3x3
	case NestedCube4x4x4:
		return nestedCube4x4x4
	default:
		return ""
	}
}

// Sequence returns the transform's parsed rotation sequence.
func (t Transform) Sequence() []puzzlecube.Rotation {
	rotations, err := notation.ParseSequence(t.Notation())
	if err != nil {
		panic("transforms: built-in sequence failed to parse: " + err.Error())
	}
	return rotations
}

// Apply performs the transform's sequence on cube. It fails when a rotation
// in the sequence references a layer the cube does not have; check
// MinimumSideLength first to avoid that.
func (t Transform) Apply(cube *puzzlecube.Cube) error {
	return cube.RotateSeq(t.Sequence()...)
}

// Lookup finds a transform by its display name. The second return value
// reports whether the name was known.
func Lookup(name string) (Transform, bool) {
	for _, t := range All {
		if t.Name() == name {
			return t, true
		}
	}
	return 0, false
}
