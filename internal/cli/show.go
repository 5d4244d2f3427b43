package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/puzzlecube/puzzlecube"
	"github.com/puzzlecube/puzzlecube/notation"
)

var (
	showSize    int
	showLabeled bool
	showMoves   string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display a cube, optionally after applying a move sequence",
	Long: `Create a cube of the given size, optionally apply a move sequence in
standard notation, and print the resulting state as an unfolded net.

Examples:
  puzzlecube show --size 3 --moves "F2 R U' F"
  puzzlecube show --size 5 --moves "3Fw 2-4R'" --labeled`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntVar(&showSize, "size", 3, "Cube side length")
	showCmd.Flags().BoolVar(&showLabeled, "labeled", false, "Label each tile with a unique character (side length up to 8)")
	showCmd.Flags().StringVar(&showMoves, "moves", "", "Move sequence to apply before displaying")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cube, err := newCube(showSize, showLabeled)
	if err != nil {
		return err
	}

	if showMoves != "" {
		if err := notation.PerformSequence(showMoves, cube); err != nil {
			return err
		}
	}

	fmt.Print(renderCube(cube))
	return nil
}

// newCube builds a cube from the shared size/labeled flag pair.
func newCube(size int, labeled bool) (*puzzlecube.Cube, error) {
	if labeled {
		return puzzlecube.NewLabeled(size)
	}
	return puzzlecube.New(size)
}
