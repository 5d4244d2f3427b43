package puzzlecube

// Rotate performs the given rotation once.
//
// The rotation is normalised first: a Setback of the far face becomes layer
// 0 of the opposite face with the direction flipped, and anticlockwise
// rotations are applied as three clockwise turns. Layer bounds are checked
// before any mutation, so on error the cube is left untouched.
func (c *Cube) Rotate(r Rotation) error {
	r = r.normalise(c.sideLength)
	if err := c.checkLayerBounds(r); err != nil {
		return err
	}
	c.apply(r)
	return nil
}

// RotateSeq applies rotations in order, stopping at the first error. Rotations
// applied before the failing one remain applied; there is no rollback.
func (c *Cube) RotateSeq(rotations ...Rotation) error {
	for _, r := range rotations {
		if err := c.Rotate(r); err != nil {
			return err
		}
	}
	return nil
}

// Shuffle performs moveCount random rotations on the cube. Rotations are
// drawn uniformly over faces and legal layers, so they cannot fail.
func (c *Cube) Shuffle(moveCount int) {
	for range moveCount {
		_ = c.Rotate(RandomRotation(c.sideLength))
	}
}

func (c *Cube) checkLayerBounds(r Rotation) error {
	first, last := r.layerRange()
	for _, layer := range [2]int{first, last} {
		if layer < 0 || layer >= c.sideLength {
			return &LayerError{Layer: layer, SideLength: c.sideLength}
		}
	}
	return nil
}

// apply assumes r is normalised and within bounds.
func (c *Cube) apply(r Rotation) {
	if r.Direction == Anticlockwise {
		// Anticlockwise is three clockwise turns of the same layers.
		reversed := r.Inverse()
		c.apply(reversed)
		c.apply(reversed)
		c.apply(reversed)
		return
	}

	switch r.Kind {
	case FaceOnly:
		c.rotateLayer(r.RelativeTo, 0)
	case Setback:
		c.rotateLayer(r.RelativeTo, r.Layer)
	case Multilayer:
		for layer := 0; layer <= r.Layer; layer++ {
			c.apply(ClockwiseSetback(r.RelativeTo, layer).normalise(c.sideLength))
		}
	case MultiSetback:
		for layer := r.StartLayer; layer <= r.EndLayer; layer++ {
			c.apply(ClockwiseSetback(r.RelativeTo, layer).normalise(c.sideLength))
		}
	}
}

func (c *Cube) rotateLayer(face Face, layersBack int) {
	if layersBack == 0 {
		c.rotateFaceClockwise(face)
	}
	c.rotateAdjacentsClockwise(face, layersBack)
}

// rotateFaceClockwise turns the face's own grid 90° clockwise in place by
// reversing the row order and then transposing, with no second grid.
func (c *Cube) rotateFaceClockwise(face Face) {
	side := c.sides[face]
	for i, j := 0, c.sideLength-1; i < j; i, j = i+1, j-1 {
		side[i], side[j] = side[j], side[i]
	}
	for i := 1; i < c.sideLength; i++ {
		for j := 0; j < i; j++ {
			side[i][j], side[j][i] = side[j][i], side[i][j]
		}
	}
}

// rotateAdjacentsClockwise cycles the edge slices of the four faces adjacent
// to face, set back layersBack layers. Each face's slice is written to the
// next adjacent face in clockwise order.
func (c *Cube) rotateAdjacentsClockwise(face Face, layersBack int) {
	adjacents := face.AdjacentFacesClockwise()

	var slices [4][]Tile
	for i, a := range adjacents {
		slices[i] = clockwiseEdgeSlice(c.sides[a.Face], a.Alignment, layersBack)
	}
	for i, slice := range slices {
		target := adjacents[(i+1)%4]
		writeEdgeSlice(c.sides[target.Face], target.Alignment, layersBack, slice)
	}
}

// clockwiseEdgeSlice extracts the edge slice of side that is layersBack
// layers in from the edge named by alignment, ordered so that consecutive
// slices around the rotating face form a continuous clockwise path. OuterEnd
// and InnerFirst read in reverse of their storage order to preserve that
// continuity.
func clockwiseEdgeSlice(side Grid, alignment EdgeAlignment, layersBack int) []Tile {
	n := len(side)
	out := make([]Tile, n)
	switch alignment {
	case OuterStart:
		for i := range side {
			out[i] = side[i][layersBack]
		}
	case OuterEnd:
		col := n - 1 - layersBack
		for i := range side {
			out[n-1-i] = side[i][col]
		}
	case InnerFirst:
		for i, t := range side[layersBack] {
			out[n-1-i] = t
		}
	case InnerLast:
		copy(out, side[n-1-layersBack])
	}
	return out
}

// writeEdgeSlice writes values into the edge slice of side named by
// alignment, set back layersBack layers, applying the same reversal rule as
// clockwiseEdgeSlice on the way in.
func writeEdgeSlice(side Grid, alignment EdgeAlignment, layersBack int, values []Tile) {
	n := len(side)
	if alignment == OuterEnd || alignment == InnerFirst {
		reversed := make([]Tile, n)
		for i, t := range values {
			reversed[n-1-i] = t
		}
		values = reversed
	}

	switch alignment {
	case OuterStart:
		for i := range side {
			side[i][layersBack] = values[i]
		}
	case OuterEnd:
		col := n - 1 - layersBack
		for i := range side {
			side[i][col] = values[i]
		}
	case InnerFirst:
		copy(side[layersBack], values)
	case InnerLast:
		copy(side[n-1-layersBack], values)
	}
}
