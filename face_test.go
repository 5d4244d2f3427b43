package puzzlecube

import "testing"

func TestOppositePairs(t *testing.T) {
	pairs := map[Face]Face{
		Up:    Down,
		Down:  Up,
		Front: Back,
		Back:  Front,
		Right: Left,
		Left:  Right,
	}
	for face, want := range pairs {
		if got := face.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", face, got, want)
		}
	}
}

func TestOppositeIsInvolution(t *testing.T) {
	for _, face := range Faces {
		if got := face.Opposite().Opposite(); got != face {
			t.Errorf("%v.Opposite().Opposite() = %v, want %v", face, got, face)
		}
	}
}

func TestAdjacentFacesClockwiseUp(t *testing.T) {
	want := [4]AdjacentFace{
		{Front, InnerFirst},
		{Left, InnerFirst},
		{Back, InnerFirst},
		{Right, InnerFirst},
	}
	if got := Up.AdjacentFacesClockwise(); got != want {
		t.Errorf("Up.AdjacentFacesClockwise() = %v, want %v", got, want)
	}
}

func TestAdjacentFacesClockwiseFront(t *testing.T) {
	want := [4]AdjacentFace{
		{Up, InnerLast},
		{Right, OuterStart},
		{Down, InnerFirst},
		{Left, OuterEnd},
	}
	if got := Front.AdjacentFacesClockwise(); got != want {
		t.Errorf("Front.AdjacentFacesClockwise() = %v, want %v", got, want)
	}
}

// Every face's adjacency list must contain exactly the four faces that are
// neither itself nor its opposite.
func TestAdjacentFacesExcludeSelfAndOpposite(t *testing.T) {
	for _, face := range Faces {
		seen := map[Face]bool{}
		for _, adj := range face.AdjacentFacesClockwise() {
			if adj.Face == face {
				t.Errorf("%v lists itself as adjacent", face)
			}
			if adj.Face == face.Opposite() {
				t.Errorf("%v lists its opposite %v as adjacent", face, adj.Face)
			}
			if seen[adj.Face] {
				t.Errorf("%v lists %v twice", face, adj.Face)
			}
			seen[adj.Face] = true
		}
		if len(seen) != 4 {
			t.Errorf("%v has %d distinct adjacents, want 4", face, len(seen))
		}
	}
}

// The adjacency relation must be symmetric: if g borders f, then f borders g.
func TestAdjacencyIsSymmetric(t *testing.T) {
	for _, face := range Faces {
		for _, adj := range face.AdjacentFacesClockwise() {
			found := false
			for _, back := range adj.Face.AdjacentFacesClockwise() {
				if back.Face == face {
					found = true
				}
			}
			if !found {
				t.Errorf("%v lists %v as adjacent but not vice versa", face, adj.Face)
			}
		}
	}
}

// Each face borders exactly four others, so across all six adjacency lists
// every face must appear exactly four times.
func TestEachFaceAppearsFourTimes(t *testing.T) {
	counts := map[Face]int{}
	for _, face := range Faces {
		for _, adj := range face.AdjacentFacesClockwise() {
			counts[adj.Face]++
		}
	}
	for _, face := range Faces {
		if counts[face] != 4 {
			t.Errorf("%v appears %d times across adjacency lists, want 4", face, counts[face])
		}
	}
}
