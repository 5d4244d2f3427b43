package puzzlecube

import (
	"fmt"
	"math/rand/v2"
)

// Direction represents which way a rotation turns, from the perspective of
// looking directly at the anchor face from outside the cube.
type Direction int

const (
	Clockwise Direction = iota
	Anticlockwise
)

func (d Direction) String() string {
	if d == Anticlockwise {
		return "anticlockwise"
	}
	return "clockwise"
}

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	if d == Clockwise {
		return Anticlockwise
	}
	return Clockwise
}

// RotationKind selects which layer(s) a Rotation affects.
//
// Layer indices are counted from the anchor face: 0 is the face itself, 1 is
// the layer immediately behind it, and side length - 1 is the opposite face.
type RotationKind int

const (
	// FaceOnly affects just the anchor face's layer, e.g. R.
	FaceOnly RotationKind = iota
	// Setback affects a single layer behind the anchor face, e.g. 3R.
	Setback
	// Multilayer affects the anchor face plus every layer up to and
	// including Layer (a wide turn), e.g. Rw or 3Rw.
	Multilayer
	// MultiSetback affects every layer in the inclusive range
	// StartLayer..EndLayer, e.g. 2-4R.
	MultiSetback
)

func (k RotationKind) String() string {
	switch k {
	case FaceOnly:
		return "FaceOnly"
	case Setback:
		return "Setback"
	case Multilayer:
		return "Multilayer"
	case MultiSetback:
		return "MultiSetback"
	default:
		return "?"
	}
}

// Rotation describes a single 90° turn of some part of a cube. It is an
// immutable value carrying no reference to any Cube, and is comparable with
// == when built via the package constructors (unused layer fields are zero).
type Rotation struct {
	// RelativeTo anchors the reference frame for direction and layers.
	RelativeTo Face

	Direction Direction

	Kind RotationKind

	// Layer is the affected layer for Setback, or the deepest included
	// layer for Multilayer. Zero for other kinds.
	Layer int

	// StartLayer and EndLayer bound the inclusive range for MultiSetback.
	// Zero for other kinds.
	StartLayer int
	EndLayer   int
}

// ClockwiseRotation turns face 90° clockwise.
func ClockwiseRotation(face Face) Rotation {
	return Rotation{RelativeTo: face, Direction: Clockwise, Kind: FaceOnly}
}

// AnticlockwiseRotation turns face 90° anticlockwise.
func AnticlockwiseRotation(face Face) Rotation {
	return Rotation{RelativeTo: face, Direction: Anticlockwise, Kind: FaceOnly}
}

// ClockwiseSetback turns the single layer layersBack behind face clockwise.
func ClockwiseSetback(face Face, layersBack int) Rotation {
	return Rotation{RelativeTo: face, Direction: Clockwise, Kind: Setback, Layer: layersBack}
}

// AnticlockwiseSetback turns the single layer layersBack behind face anticlockwise.
func AnticlockwiseSetback(face Face, layersBack int) Rotation {
	return Rotation{RelativeTo: face, Direction: Anticlockwise, Kind: Setback, Layer: layersBack}
}

// ClockwiseMultilayer turns face together with every layer up to layersBack clockwise.
func ClockwiseMultilayer(face Face, layersBack int) Rotation {
	return Rotation{RelativeTo: face, Direction: Clockwise, Kind: Multilayer, Layer: layersBack}
}

// AnticlockwiseMultilayer turns face together with every layer up to layersBack anticlockwise.
func AnticlockwiseMultilayer(face Face, layersBack int) Rotation {
	return Rotation{RelativeTo: face, Direction: Anticlockwise, Kind: Multilayer, Layer: layersBack}
}

// ClockwiseMultiSetback turns every layer from startLayer to endLayer inclusive clockwise.
func ClockwiseMultiSetback(face Face, startLayer, endLayer int) Rotation {
	return Rotation{RelativeTo: face, Direction: Clockwise, Kind: MultiSetback, StartLayer: startLayer, EndLayer: endLayer}
}

// AnticlockwiseMultiSetback turns every layer from startLayer to endLayer inclusive anticlockwise.
func AnticlockwiseMultiSetback(face Face, startLayer, endLayer int) Rotation {
	return Rotation{RelativeTo: face, Direction: Anticlockwise, Kind: MultiSetback, StartLayer: startLayer, EndLayer: endLayer}
}

// Inverse returns the rotation that undoes r: same layers, opposite direction.
func (r Rotation) Inverse() Rotation {
	r.Direction = r.Direction.Inverse()
	return r
}

// layerRange returns the inclusive range of layer indices r affects.
func (r Rotation) layerRange() (first, last int) {
	switch r.Kind {
	case FaceOnly:
		return 0, 0
	case Setback:
		return r.Layer, r.Layer
	case Multilayer:
		return 0, r.Layer
	case MultiSetback:
		return r.StartLayer, r.EndLayer
	default:
		return 0, 0
	}
}

// normalise rewrites r so the engine only needs the simple cases: a Setback
// of the far face becomes layer 0 of the opposite face with the direction
// flipped, and a reversed MultiSetback range is reordered.
func (r Rotation) normalise(sideLength int) Rotation {
	switch {
	case r.Kind == MultiSetback && r.StartLayer > r.EndLayer:
		r.StartLayer, r.EndLayer = r.EndLayer, r.StartLayer
		return r
	case r.Kind == Setback && r.Layer == sideLength-1 && sideLength > 1:
		return r.asLayerZeroOfOppositeFace()
	default:
		return r
	}
}

func (r Rotation) asLayerZeroOfOppositeFace() Rotation {
	return Rotation{
		RelativeTo: r.RelativeTo.Opposite(),
		Direction:  r.Direction.Inverse(),
		Kind:       FaceOnly,
	}
}

// RandomRotation returns a uniformly chosen rotation that is valid for a cube
// of the given side length. Unusual cases such as picking the far layer are
// not avoided; normalisation during Rotate handles them.
func RandomRotation(sideLength int) Rotation {
	face := Faces[rand.IntN(len(Faces))]
	layer := rand.IntN(sideLength)
	direction := Clockwise
	if rand.IntN(2) == 0 {
		direction = Anticlockwise
	}
	multilayer := rand.IntN(3) == 0
	setback := rand.IntN(3) == 0

	r := Rotation{RelativeTo: face, Direction: direction}
	switch {
	case layer == 0:
		r.Kind = FaceOnly
	case multilayer && setback:
		other := rand.IntN(sideLength)
		r.Kind = MultiSetback
		r.StartLayer = min(layer, other)
		r.EndLayer = max(layer, other)
	case multilayer:
		r.Kind = Multilayer
		r.Layer = layer
	default:
		r.Kind = Setback
		r.Layer = layer
	}
	return r
}

// Notation returns the canonical notation text for r, e.g. "F", "R'", "3U",
// "Fw", "3Fw", or "2-4L'". Setback of layer 0 and Multilayer of layer 0
// collapse to the plain face token; re-parsing that token yields the
// equivalent FaceOnly rotation, not the degenerate original, so the text
// round trip is structural only for canonical values.
func (r Rotation) Notation() string {
	var prefix, wide string
	switch r.Kind {
	case FaceOnly:
	case Setback:
		if r.Layer > 0 {
			prefix = fmt.Sprintf("%d", r.Layer+1)
		}
	case Multilayer:
		if r.Layer > 0 {
			wide = "w"
			if r.Layer > 1 {
				prefix = fmt.Sprintf("%d", r.Layer+1)
			}
		}
	case MultiSetback:
		prefix = fmt.Sprintf("%d-%d", r.StartLayer+1, r.EndLayer+1)
	}

	suffix := ""
	if r.Direction == Anticlockwise {
		suffix = "'"
	}
	return prefix + r.RelativeTo.String() + wide + suffix
}

// String returns the notation text (alias for Notation).
func (r Rotation) String() string {
	return r.Notation()
}
