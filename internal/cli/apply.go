package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/puzzlecube/puzzlecube"
	"github.com/puzzlecube/puzzlecube/notation"
)

var (
	applySize    int
	applyLabeled bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <sequence>",
	Short: "Apply a move sequence to a fresh cube",
	Long: `Apply a move sequence in standard notation to a fresh cube and print the
resulting state as an unfolded net.

Examples:
  puzzlecube apply "F2 R U' F"
  puzzlecube apply --size 4 --labeled "3Fw 2-4R'"`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().IntVar(&applySize, "size", 3, "Cube side length")
	applyCmd.Flags().BoolVar(&applyLabeled, "labeled", false, "Label each tile with a unique character (side length up to 8)")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	cube, err := applySequence(applySize, applyLabeled, args[0])
	if err != nil {
		return err
	}
	fmt.Print(renderCube(cube))
	return nil
}

// applySequence builds a cube from the size/labeled flag pair and performs
// the given notation text on it.
func applySequence(size int, labeled bool, moves string) (*puzzlecube.Cube, error) {
	cube, err := newCube(size, labeled)
	if err != nil {
		return nil, err
	}
	if err := notation.PerformSequence(moves, cube); err != nil {
		return nil, err
	}
	return cube, nil
}
