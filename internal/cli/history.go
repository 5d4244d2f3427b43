package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/puzzlecube/puzzlecube/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved scrambles",
	Long:  `List the most recent scrambles saved with 'puzzlecube scramble --save', newest first.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of scrambles to list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if verbose {
		fmt.Printf("database: %s\n", db.Path())
	}

	repo := storage.NewScrambleRepository(db)
	scrambles, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	if len(scrambles) == 0 {
		fmt.Println("No saved scrambles")
		return nil
	}

	for _, s := range scrambles {
		fmt.Printf("%s  %dx%dx%d  %2d moves  %s\n",
			s.CreatedAt.Local().Format(time.DateTime),
			s.SideLength, s.SideLength, s.SideLength,
			s.MoveCount, s.Notation)
		if verbose {
			fmt.Printf("  id: %s\n", s.ScrambleID)
		}
	}
	return nil
}
