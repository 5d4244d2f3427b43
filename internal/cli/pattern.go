package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/puzzlecube/puzzlecube"
	"github.com/puzzlecube/puzzlecube/transforms"
)

var patternSize int

var patternCmd = &cobra.Command{
	Use:   "pattern [name]",
	Short: "Apply a known pattern transform to a fresh cube",
	Long: `Apply one of the built-in pattern transforms (checkerboard, crosses,
nested cubes) to a fresh cube and print the result. With no arguments the
available patterns are listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPattern,
}

func init() {
	patternCmd.Flags().IntVar(&patternSize, "size", 3, "Cube side length")
	rootCmd.AddCommand(patternCmd)
}

func runPattern(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, t := range transforms.All {
			fmt.Printf("%-22s %s\n", t.Name(), t.Description())
			fmt.Printf("%22s %s\n", "", t.Notation())
		}
		return nil
	}

	t, ok := transforms.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown pattern %q (run 'puzzlecube pattern' to list)", args[0])
	}
	if patternSize < t.MinimumSideLength() {
		return fmt.Errorf("pattern %q needs a side length of at least %d", t.Name(), t.MinimumSideLength())
	}

	cube, err := puzzlecube.New(patternSize)
	if err != nil {
		return err
	}
	if err := t.Apply(cube); err != nil {
		return err
	}

	fmt.Print(renderCube(cube))
	return nil
}
