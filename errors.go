package puzzlecube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the puzzlecube package.
var (
	// Construction errors
	ErrSideLength        = errors.New("puzzlecube: side length must be at least 1")
	ErrLabeledSideLength = errors.New("puzzlecube: labeled cube side length must be between 1 and 8")

	// Rotation errors
	ErrLayerOutOfRange = errors.New("puzzlecube: layer out of range")
)

// LayerError reports a rotation that references a layer index that does not
// exist for the cube's side length. It is returned by Rotate before any
// mutation takes place.
type LayerError struct {
	Layer      int
	SideLength int
}

func (e *LayerError) Error() string {
	return fmt.Sprintf("puzzlecube: layer %d out of range for side length %d (valid layers are 0..%d)",
		e.Layer, e.SideLength, e.SideLength-1)
}

func (e *LayerError) Unwrap() error {
	return ErrLayerOutOfRange
}
