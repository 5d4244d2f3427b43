package puzzlecube

import "testing"

func TestDirectionInverse(t *testing.T) {
	if Clockwise.Inverse() != Anticlockwise {
		t.Error("Clockwise.Inverse() != Anticlockwise")
	}
	if Anticlockwise.Inverse() != Clockwise {
		t.Error("Anticlockwise.Inverse() != Clockwise")
	}
}

func TestRotationInverseFlipsDirectionOnly(t *testing.T) {
	r := ClockwiseMultiSetback(Back, 1, 3)
	inv := r.Inverse()
	if inv.Direction != Anticlockwise {
		t.Errorf("Inverse direction = %v, want Anticlockwise", inv.Direction)
	}
	inv.Direction = r.Direction
	if inv != r {
		t.Errorf("Inverse changed more than the direction: %+v vs %+v", inv, r)
	}
	if r.Inverse().Inverse() != r {
		t.Error("double Inverse did not restore the rotation")
	}
}

func TestRotationsAreComparable(t *testing.T) {
	if ClockwiseRotation(Front) != ClockwiseRotation(Front) {
		t.Error("identical FaceOnly rotations compare unequal")
	}
	if ClockwiseRotation(Front) == AnticlockwiseRotation(Front) {
		t.Error("opposite directions compare equal")
	}
	if ClockwiseSetback(Front, 1) == ClockwiseMultilayer(Front, 1) {
		t.Error("different kinds compare equal")
	}
}

func TestNormaliseReordersReversedRange(t *testing.T) {
	r := ClockwiseMultiSetback(Up, 3, 1).normalise(5)
	if r != ClockwiseMultiSetback(Up, 1, 3) {
		t.Errorf("normalise = %+v, want start 1 end 3", r)
	}
}

func TestNormaliseFarSetbackBecomesOppositeFace(t *testing.T) {
	cases := []struct {
		in         Rotation
		sideLength int
		want       Rotation
	}{
		{ClockwiseSetback(Right, 4), 5, AnticlockwiseRotation(Left)},
		{AnticlockwiseSetback(Up, 2), 3, ClockwiseRotation(Down)},
		{ClockwiseSetback(Front, 1), 2, AnticlockwiseRotation(Back)},
	}
	for _, tc := range cases {
		if got := tc.in.normalise(tc.sideLength); got != tc.want {
			t.Errorf("%+v normalise(%d) = %+v, want %+v", tc.in, tc.sideLength, got, tc.want)
		}
	}
}

func TestNormaliseLeavesOthersAlone(t *testing.T) {
	unchanged := []Rotation{
		ClockwiseRotation(Front),
		AnticlockwiseSetback(Left, 2),
		ClockwiseMultilayer(Down, 7), // layer 7 of side 8 stays a multilayer
		ClockwiseMultiSetback(Back, 1, 3),
	}
	for _, r := range unchanged {
		if got := r.normalise(8); got != r {
			t.Errorf("normalise changed %+v to %+v", r, got)
		}
	}
	// A 1x1 cube's only layer is the face itself.
	if got := ClockwiseSetback(Up, 0).normalise(1); got != ClockwiseSetback(Up, 0) {
		t.Errorf("normalise on side 1 changed %+v", got)
	}
}

func TestNotation(t *testing.T) {
	cases := []struct {
		rotation Rotation
		want     string
	}{
		{ClockwiseRotation(Front), "F"},
		{AnticlockwiseRotation(Right), "R'"},
		{ClockwiseSetback(Up, 2), "3U"},
		{AnticlockwiseSetback(Down, 1), "2D'"},
		{ClockwiseSetback(Back, 0), "B"},
		{ClockwiseMultilayer(Front, 1), "Fw"},
		{AnticlockwiseMultilayer(Left, 1), "Lw'"},
		{ClockwiseMultilayer(Right, 2), "3Rw"},
		{ClockwiseMultilayer(Up, 0), "U"},
		{ClockwiseMultiSetback(Left, 1, 3), "2-4L"},
		{AnticlockwiseMultiSetback(Back, 0, 2), "1-3B'"},
		{ClockwiseMultiSetback(Front, 2, 2), "3-3F"},
	}
	for _, tc := range cases {
		if got := tc.rotation.Notation(); got != tc.want {
			t.Errorf("%+v Notation() = %q, want %q", tc.rotation, got, tc.want)
		}
		if got := tc.rotation.String(); got != tc.want {
			t.Errorf("%+v String() = %q, want %q", tc.rotation, got, tc.want)
		}
	}
}

func TestRandomRotationStaysInBounds(t *testing.T) {
	for _, sideLength := range []int{1, 2, 3, 5, 9} {
		for range 200 {
			r := RandomRotation(sideLength)
			first, last := r.layerRange()
			if first < 0 || last >= sideLength || first > last {
				t.Fatalf("RandomRotation(%d) = %+v with layer range %d..%d", sideLength, r, first, last)
			}
		}
	}
}

func TestRandomRotationProducesVariety(t *testing.T) {
	seen := map[Rotation]bool{}
	for range 500 {
		seen[RandomRotation(4)] = true
	}
	if len(seen) < 10 {
		t.Errorf("only %d distinct rotations in 500 draws", len(seen))
	}
}
