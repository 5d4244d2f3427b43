package puzzlecube

import "testing"

func TestSolvedColours(t *testing.T) {
	want := map[Face]Colour{
		Up:    White,
		Down:  Yellow,
		Front: Blue,
		Right: Orange,
		Back:  Green,
		Left:  Red,
	}
	for face, colour := range want {
		if got := SolvedColour(face); got != colour {
			t.Errorf("SolvedColour(%v) = %v, want %v", face, got, colour)
		}
	}
}

func TestOppositeFacesHaveDistinctColours(t *testing.T) {
	for _, face := range Faces {
		if SolvedColour(face) == SolvedColour(face.Opposite()) {
			t.Errorf("%v and %v share a solved colour", face, face.Opposite())
		}
	}
}

func TestTileGlyph(t *testing.T) {
	plain := Tile{Colour: Blue}
	if got := plain.Glyph(); got != DefaultTileGlyph {
		t.Errorf("unlabeled Glyph() = %q, want %q", got, DefaultTileGlyph)
	}
	labeled := Tile{Colour: Blue, Label: '7'}
	if got := labeled.Glyph(); got != '7' {
		t.Errorf("labeled Glyph() = %q, want '7'", got)
	}
}

func TestColourString(t *testing.T) {
	want := map[Colour]string{
		White:  "W",
		Yellow: "Y",
		Blue:   "B",
		Orange: "O",
		Green:  "G",
		Red:    "R",
	}
	for colour, s := range want {
		if got := colour.String(); got != s {
			t.Errorf("%d.String() = %q, want %q", colour, got, s)
		}
	}
}
