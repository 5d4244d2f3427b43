package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/puzzlecube/puzzlecube"
	"github.com/puzzlecube/puzzlecube/internal/storage"
	"github.com/puzzlecube/puzzlecube/notation"
)

var (
	scrambleSize  int
	scrambleMoves int
	scrambleSave  bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Scramble a cube with random rotations",
	Long: `Apply random rotations to a fresh cube and print the resulting state
together with the scramble in notation text. With --save the scramble is
recorded in the history database.`,
	RunE: runScramble,
}

func init() {
	scrambleCmd.Flags().IntVar(&scrambleSize, "size", 3, "Cube side length")
	scrambleCmd.Flags().IntVar(&scrambleMoves, "moves", 25, "Number of random rotations")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "Save the scramble to the history database")
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	cube, err := puzzlecube.New(scrambleSize)
	if err != nil {
		return err
	}

	rotations := make([]puzzlecube.Rotation, scrambleMoves)
	for i := range rotations {
		rotations[i] = puzzlecube.RandomRotation(scrambleSize)
	}
	if err := cube.RotateSeq(rotations...); err != nil {
		return err
	}

	sequence := notation.FormatSequence(rotations)
	fmt.Print(renderCube(cube))
	fmt.Printf("\nScramble: %s\n", sequence)

	if !scrambleSave {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewScrambleRepository(db)
	id, err := repo.Create(scrambleSize, len(rotations), sequence)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Printf("Saved scramble %s\n", id)
	}
	return nil
}

// openDB opens the history database from the --db flag or default path and
// ensures the schema is current.
func openDB() (*storage.DB, error) {
	var (
		db  *storage.DB
		err error
	)
	if path := getDBPath(); path != "" {
		db, err = storage.Open(path)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
